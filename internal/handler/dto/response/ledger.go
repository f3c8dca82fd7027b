package response

import (
	"time"

	"colpa-mia/internal/usecase/queries"
)

type BalanceResponse struct {
	Identity    string    `json:"identity"`
	Balance     int       `json:"balance"`
	LastUpdated time.Time `json:"last_updated"`
}

type LedgerEntryResponse struct {
	EventID     string    `json:"event_id"`
	AmountDelta int       `json:"amount_delta"`
	Timestamp   time.Time `json:"timestamp"`
	SourceSKU   string    `json:"source_sku,omitempty"`
}

type LedgerResponse struct {
	Identity    string                `json:"identity"`
	Balance     int                   `json:"balance"`
	History     []LedgerEntryResponse `json:"history"`
	LastUpdated time.Time             `json:"last_updated"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		Identity:    v.Identity,
		Balance:     v.Balance,
		LastUpdated: v.LastUpdated,
	}
}

func FromLedgerView(v *queries.LedgerView) *LedgerResponse {
	history := make([]LedgerEntryResponse, len(v.History))
	for i, e := range v.History {
		history[i] = LedgerEntryResponse{
			EventID:     e.EventID,
			AmountDelta: e.AmountDelta,
			Timestamp:   e.Timestamp,
			SourceSKU:   e.SourceSKU,
		}
	}
	return &LedgerResponse{
		Identity:    v.Identity,
		Balance:     v.Balance,
		History:     history,
		LastUpdated: v.LastUpdated,
	}
}
