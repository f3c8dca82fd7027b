package stripegw

import (
	"encoding/json"

	"colpa-mia/internal/domain/ledger"
	"colpa-mia/internal/domain/payment"
	"colpa-mia/internal/pkg/errs"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Verifier authenticates inbound Stripe events against the endpoint's
// signing secret and normalizes the two payment-completion event types into
// a payment.Event. Every other event type yields (nil, nil): acknowledged,
// no side effects.
type Verifier struct {
	secret string
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

func (v *Verifier) VerifyAndParse(body []byte, sigHeader string) (*payment.Event, error) {
	if v.secret == "" {
		return nil, errs.ErrWebhookSecretMissing
	}

	event, err := webhook.ConstructEventWithOptions(body, sigHeader, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSignature)
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		return parseCheckoutSession(&event)
	case stripe.EventTypePaymentIntentSucceeded:
		return parsePaymentIntent(&event)
	}

	return nil, nil
}

func parseCheckoutSession(event *stripe.Event) (*payment.Event, error) {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, errs.Mark(err, errs.ErrMalformedPayload)
	}

	out := &payment.Event{
		ID:         event.ID,
		Kind:       payment.KindCheckoutCompleted,
		CheckoutID: sess.ID,
		Metadata:   sess.Metadata,
	}
	if sess.PaymentIntent != nil {
		out.PaymentIntentID = sess.PaymentIntent.ID
	}
	if sess.Customer != nil {
		out.CustomerID = sess.Customer.ID
	}

	email := ""
	if sess.CustomerDetails != nil {
		email = sess.CustomerDetails.Email
		if sess.CustomerDetails.Phone != "" {
			out.PhoneHints = append(out.PhoneHints, sess.CustomerDetails.Phone)
		}
	}
	if email == "" {
		email = sess.CustomerEmail
	}
	if email == "" {
		email = sess.Metadata["email"]
	}
	if phone := sess.Metadata["phone"]; phone != "" {
		out.PhoneHints = append(out.PhoneHints, phone)
	}

	return finishEvent(out, email)
}

func parsePaymentIntent(event *stripe.Event) (*payment.Event, error) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, errs.Mark(err, errs.ErrMalformedPayload)
	}

	out := &payment.Event{
		ID:              event.ID,
		Kind:            payment.KindPaymentSucceeded,
		PaymentIntentID: pi.ID,
		Metadata:        pi.Metadata,
	}
	if pi.Customer != nil {
		out.CustomerID = pi.Customer.ID
	}
	if pi.Shipping != nil && pi.Shipping.Phone != "" {
		out.PhoneHints = append(out.PhoneHints, pi.Shipping.Phone)
	}
	if phone := pi.Metadata["phone"]; phone != "" {
		out.PhoneHints = append(out.PhoneHints, phone)
	}

	email := pi.Metadata["email"]
	if email == "" {
		email = pi.ReceiptEmail
	}

	return finishEvent(out, email)
}

func finishEvent(out *payment.Event, email string) (*payment.Event, error) {
	if out.ID == "" {
		return nil, errs.ErrMissingEventID
	}
	out.Identity = ledger.NormalizeIdentity(email)
	if out.Identity == "" {
		return nil, errs.ErrMissingIdentity
	}
	if out.Metadata == nil {
		out.Metadata = map[string]string{}
	}
	return out, nil
}
