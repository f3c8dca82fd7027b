package commands

import (
	"context"
	"log/slog"

	"colpa-mia/internal/domain/entitlement"
	"colpa-mia/internal/domain/payment"
	"colpa-mia/internal/infra/excusegen"
	"colpa-mia/internal/infra/notify"
	"colpa-mia/internal/pkg/errs"
)

type FulfillStatus string

const (
	StatusCredited         FulfillStatus = "credited"
	StatusAlreadyProcessed FulfillStatus = "already_processed"
	StatusIgnored          FulfillStatus = "ignored"
)

const IgnoreReasonNoMinutes = "no_minutes"

type FulfillResult struct {
	Status       FulfillStatus
	IgnoreReason string
	Minutes      int
	Balance      int
	Channel      string
	Degraded     bool // excuse generation fell back to the pre-authored set
}

type PaymentCommands interface {
	FulfillPayment(ctx context.Context, evt *payment.Event) (*FulfillResult, error)
}

type fulfillmentUseCaseImpl struct {
	markers    MarkerStore
	ledger     LedgerStore
	gateway    PaymentGateway
	generator  ExcuseGenerator
	dispatcher NotificationDispatcher
	rules      entitlement.Table
	logger     *slog.Logger
}

func NewFulfillmentUseCase(
	markers MarkerStore,
	ledger LedgerStore,
	gateway PaymentGateway,
	generator ExcuseGenerator,
	dispatcher NotificationDispatcher,
	rules entitlement.Table,
	logger *slog.Logger,
) PaymentCommands {
	return &fulfillmentUseCaseImpl{
		markers:    markers,
		ledger:     ledger,
		gateway:    gateway,
		generator:  generator,
		dispatcher: dispatcher,
		rules:      rules,
		logger:     logger,
	}
}

// FulfillPayment runs the strictly sequential pipeline:
// guard-check -> resolve -> credit -> mark -> generate -> notify -> record.
// Steps after the credit never fail the pipeline; a retried delivery of the
// same event short-circuits on either idempotency signal.
func (u *fulfillmentUseCaseImpl) FulfillPayment(ctx context.Context, evt *payment.Event) (*FulfillResult, error) {
	// Secondary signal first: the outcome a previous run wrote onto the
	// payment record. Diagnostic cross-check, cheap to read.
	if evt.AlreadyCredited() {
		u.logger.Info("skipping event already credited per payment metadata", "event_id", evt.ID)
		return &FulfillResult{Status: StatusAlreadyProcessed}, nil
	}

	keys := evt.IdempotencyKeys()
	seen, err := u.markers.Seen(ctx, keys...)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if seen {
		return &FulfillResult{Status: StatusAlreadyProcessed}, nil
	}

	grant, err := u.resolveGrant(ctx, evt)
	if err != nil {
		return nil, err
	}
	if grant.Minutes == 0 {
		return &FulfillResult{Status: StatusIgnored, IgnoreReason: IgnoreReasonNoMinutes}, nil
	}

	rec, err := u.ledger.Credit(ctx, evt.Identity, grant.Minutes, evt.ID, grant.SourceSKU)
	if err != nil {
		// Nothing mutated yet; the provider will retry the whole event.
		return nil, err
	}

	// The credit is committed: from here on every failure is recorded, not
	// propagated. A marker write failure leaves the retry window open, which
	// is the accepted trade-off against failing a credited event.
	if err := u.markers.Mark(ctx, keys...); err != nil {
		u.logger.Warn("failed to write processed marker after credit",
			"event_id", evt.ID, "error", err)
	}

	gen := u.generator.Generate(ctx, excusegen.Request{
		Context:  evt.Metadata["context"],
		StyleTag: grant.ContentTag,
	})

	report := u.dispatcher.Dispatch(ctx, notify.Message{
		Identity:        evt.Identity,
		PhoneCandidates: u.phoneCandidates(ctx, evt),
		Variants:        gen.Variants,
		Minutes:         grant.Minutes,
		Balance:         rec.Balance(),
	})

	u.recordOutcome(ctx, evt, payment.Outcome{
		Credited:    true,
		Minutes:     grant.Minutes,
		Channel:     report.ChannelUsed(),
		NotifyError: report.FailureReason(),
	})

	return &FulfillResult{
		Status:   StatusCredited,
		Minutes:  grant.Minutes,
		Balance:  rec.Balance(),
		Channel:  report.ChannelUsed(),
		Degraded: gen.Degraded,
	}, nil
}

func (u *fulfillmentUseCaseImpl) resolveGrant(ctx context.Context, evt *payment.Event) (entitlement.Grant, error) {
	var items []entitlement.LineItem
	if evt.CheckoutID != "" {
		var err error
		items, err = u.gateway.LineItems(ctx, evt.CheckoutID)
		if err != nil {
			// Pre-credit configuration/upstream failure: reject so the
			// provider retries once the operator has fixed it.
			return entitlement.Grant{}, err
		}
	}
	return u.rules.Resolve(items, evt.Metadata), nil
}

func (u *fulfillmentUseCaseImpl) phoneCandidates(ctx context.Context, evt *payment.Event) []string {
	candidates := append([]string{}, evt.PhoneHints...)
	if evt.CustomerID != "" {
		if phone := u.gateway.CustomerPhone(ctx, evt.CustomerID); phone != "" {
			candidates = append(candidates, phone)
		}
	}
	return candidates
}

func (u *fulfillmentUseCaseImpl) recordOutcome(ctx context.Context, evt *payment.Event, oc payment.Outcome) {
	if evt.PaymentIntentID == "" {
		return
	}
	if err := u.gateway.RecordOutcome(ctx, evt.PaymentIntentID, oc); err != nil {
		u.logger.Warn("failed to record outcome on payment intent",
			"payment_intent_id", evt.PaymentIntentID, "error", err)
	}
}
