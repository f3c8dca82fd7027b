package stripegw

import (
	"context"
	"log/slog"
	"strconv"

	"colpa-mia/internal/domain/entitlement"
	"colpa-mia/internal/domain/payment"
	"colpa-mia/internal/pkg/config"
	"colpa-mia/internal/pkg/errs"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Gateway wraps the Stripe REST API calls the pipeline needs beyond the
// webhook payload itself: line-item expansion, customer profile lookup and
// the outcome writeback onto the PaymentIntent.
type Gateway struct {
	api    *client.API
	logger *slog.Logger
}

func NewGateway(cfg config.StripeConfig, logger *slog.Logger) *Gateway {
	g := &Gateway{logger: logger}
	if cfg.APIKey != "" {
		g.api = &client.API{}
		g.api.Init(cfg.APIKey, nil)
	}
	return g
}

func (g *Gateway) LineItems(ctx context.Context, checkoutID string) ([]entitlement.LineItem, error) {
	if g.api == nil {
		return nil, errs.ErrStripeKeyMissing
	}

	params := &stripe.CheckoutSessionListLineItemsParams{
		Session: stripe.String(checkoutID),
	}
	params.Context = ctx

	var items []entitlement.LineItem
	iter := g.api.CheckoutSessions.ListLineItems(params)
	for iter.Next() {
		li := iter.LineItem()
		if li.Price == nil {
			continue
		}
		items = append(items, entitlement.LineItem{
			PriceID:  li.Price.ID,
			Quantity: li.Quantity,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to list checkout line items")
	}
	return items, nil
}

// CustomerPhone returns the phone on the customer profile, or "" when the
// customer has none. Lookup failures also degrade to "": a missing
// candidate, not a pipeline error.
func (g *Gateway) CustomerPhone(ctx context.Context, customerID string) string {
	if g.api == nil || customerID == "" {
		return ""
	}

	params := &stripe.CustomerParams{}
	params.Context = ctx
	cust, err := g.api.Customers.Get(customerID, params)
	if err != nil {
		g.logger.Warn("failed to fetch customer profile", "customer_id", customerID, "error", err)
		return ""
	}
	return cust.Phone
}

// RecordOutcome writes the processing status into the PaymentIntent
// metadata. This is the secondary idempotency signal; failures are the
// caller's to log, never to fail the pipeline on.
func (g *Gateway) RecordOutcome(ctx context.Context, paymentIntentID string, oc payment.Outcome) error {
	if g.api == nil {
		return errs.ErrStripeKeyMissing
	}
	if paymentIntentID == "" {
		return errs.New("no payment intent to record outcome on")
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddMetadata(payment.CreditedFlag, strconv.FormatBool(oc.Credited))
	params.AddMetadata(payment.MinutesFlag, strconv.Itoa(oc.Minutes))
	params.AddMetadata(payment.ChannelFlag, oc.Channel)
	if oc.NotifyError != "" {
		params.AddMetadata(payment.NotifyErrorFlag, oc.NotifyError)
	}

	_, err := g.api.PaymentIntents.Update(paymentIntentID, params)
	if err != nil {
		return errs.Wrap(err, "failed to update payment intent metadata")
	}
	return nil
}
