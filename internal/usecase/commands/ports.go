package commands

import (
	"context"

	"colpa-mia/internal/domain/entitlement"
	domledger "colpa-mia/internal/domain/ledger"
	"colpa-mia/internal/domain/payment"
	"colpa-mia/internal/infra/excusegen"
	"colpa-mia/internal/infra/notify"
)

// Ports implemented by the infra layer. Declared here so the pipeline owns
// its dependencies' shape.

type MarkerStore interface {
	Seen(ctx context.Context, keys ...string) (bool, error)
	Mark(ctx context.Context, keys ...string) error
}

type LedgerStore interface {
	Get(ctx context.Context, identity string) (*domledger.Record, error)
	Credit(ctx context.Context, identity string, amount int, sourceEventID, sourceSKU string) (*domledger.Record, error)
	Debit(ctx context.Context, identity string, amount int, reason string) (*domledger.Record, error)
}

// PaymentGateway covers the provider API calls needed beyond the webhook
// payload: line-item expansion, the customer-profile phone candidate and
// the outcome writeback.
type PaymentGateway interface {
	LineItems(ctx context.Context, checkoutID string) ([]entitlement.LineItem, error)
	CustomerPhone(ctx context.Context, customerID string) string
	RecordOutcome(ctx context.Context, paymentIntentID string, oc payment.Outcome) error
}

type ExcuseGenerator interface {
	Generate(ctx context.Context, req excusegen.Request) excusegen.Result
}

type NotificationDispatcher interface {
	Dispatch(ctx context.Context, msg notify.Message) notify.DeliveryReport
}
