package queries

import (
	"context"
	"time"

	domain "colpa-mia/internal/domain/ledger"
)

type BalanceView struct {
	Identity    string    `json:"identity"`
	Balance     int       `json:"balance"`
	LastUpdated time.Time `json:"last_updated"`
}

type HistoryEntryView struct {
	EventID     string    `json:"event_id"`
	AmountDelta int       `json:"amount_delta"`
	Timestamp   time.Time `json:"timestamp"`
	SourceSKU   string    `json:"source_sku,omitempty"`
}

type LedgerView struct {
	Identity    string             `json:"identity"`
	Balance     int                `json:"balance"`
	History     []HistoryEntryView `json:"history"`
	LastUpdated time.Time          `json:"last_updated"`
}

type LedgerReader interface {
	Get(ctx context.Context, identity string) (*domain.Record, error)
}

type LedgerQueries interface {
	GetBalance(ctx context.Context, email string) (*BalanceView, error)
	GetLedger(ctx context.Context, email string) (*LedgerView, error)
}

type ledgerQueriesImpl struct {
	reader LedgerReader
}

func NewLedgerQueries(reader LedgerReader) LedgerQueries {
	return &ledgerQueriesImpl{reader: reader}
}

func (q *ledgerQueriesImpl) GetBalance(ctx context.Context, email string) (*BalanceView, error) {
	rec, err := q.reader.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	return &BalanceView{
		Identity:    rec.Identity(),
		Balance:     rec.Balance(),
		LastUpdated: rec.LastUpdated(),
	}, nil
}

func (q *ledgerQueriesImpl) GetLedger(ctx context.Context, email string) (*LedgerView, error) {
	rec, err := q.reader.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	history := rec.History()
	entries := make([]HistoryEntryView, 0, len(history))
	for _, e := range history {
		entries = append(entries, HistoryEntryView{
			EventID:     e.EventID,
			AmountDelta: e.Delta,
			Timestamp:   e.At,
			SourceSKU:   e.SourceSKU,
		})
	}

	return &LedgerView{
		Identity:    rec.Identity(),
		Balance:     rec.Balance(),
		History:     entries,
		LastUpdated: rec.LastUpdated(),
	}, nil
}
