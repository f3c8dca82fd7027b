package commands

import (
	"context"
	"log/slog"

	"colpa-mia/internal/usecase/queries"
)

// LedgerCommands is the debit path used by the assistant front-end: one
// minute consumed per generated excuse. It is independently idempotent per
// request, not per event; the caller decides when a minute is spent.
type LedgerCommands interface {
	ConsumeMinutes(ctx context.Context, email string, minutes int) (*queries.BalanceView, error)
}

type ledgerUseCaseImpl struct {
	ledger LedgerStore
	logger *slog.Logger
}

func NewLedgerUseCase(ledger LedgerStore, logger *slog.Logger) LedgerCommands {
	return &ledgerUseCaseImpl{ledger: ledger, logger: logger}
}

func (u *ledgerUseCaseImpl) ConsumeMinutes(ctx context.Context, email string, minutes int) (*queries.BalanceView, error) {
	if minutes <= 0 {
		minutes = 1
	}

	rec, err := u.ledger.Debit(ctx, email, minutes, "consume")
	if err != nil {
		return nil, err
	}

	return &queries.BalanceView{
		Identity:    rec.Identity(),
		Balance:     rec.Balance(),
		LastUpdated: rec.LastUpdated(),
	}, nil
}
