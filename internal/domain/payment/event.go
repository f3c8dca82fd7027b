// Package payment models the normalized inbound payment event and the
// processing outcome written back to it. Events are immutable external
// facts; only Outcome is ever produced by this system.
package payment

type Kind string

const (
	KindCheckoutCompleted Kind = "checkout.session.completed"
	KindPaymentSucceeded  Kind = "payment_intent.succeeded"
)

// Event is the verified, provider-agnostic view of a completed payment.
type Event struct {
	ID              string // provider event id (evt_...)
	Kind            Kind
	PaymentIntentID string
	CheckoutID      string // cs_... when the event came from Checkout
	CustomerID      string
	Identity        string // normalized customer email
	Metadata        map[string]string
	// PhoneHints are phone-number candidates carried by the event payload
	// itself (shipping, billing, custom fields), in discovery order.
	PhoneHints []string
}

// IdempotencyKeys returns the keys under which this event may already be
// marked processed. Either one being present is sufficient to skip.
func (e *Event) IdempotencyKeys() []string {
	keys := make([]string, 0, 2)
	if e.ID != "" {
		keys = append(keys, "evt:"+e.ID)
	}
	if e.PaymentIntentID != "" {
		keys = append(keys, "pi:"+e.PaymentIntentID)
	}
	return keys
}

// CreditedFlag is the metadata key used as the secondary idempotency
// signal on the payment's own record.
const (
	CreditedFlag    = "cm_credited"
	MinutesFlag     = "cm_minutes"
	ChannelFlag     = "cm_channel"
	NotifyErrorFlag = "cm_notify_error"
)

// AlreadyCredited reports the secondary idempotency signal: the outcome
// written onto the payment record by a previous run.
func (e *Event) AlreadyCredited() bool {
	return e.Metadata[CreditedFlag] == "true"
}

// Outcome is the processing status recorded back onto the payment record.
type Outcome struct {
	Credited    bool
	Minutes     int
	Channel     string
	NotifyError string
}
