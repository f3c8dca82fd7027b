package ledger

import (
	"encoding/json"
	"time"

	domain "colpa-mia/internal/domain/ledger"
)

// Persisted record shape: {identity, balance, history[], lastUpdated}.
// History entries are stored newest-first, matching the in-memory record.
type persistedRecord struct {
	Identity    string           `json:"identity"`
	Balance     *int             `json:"balance"`
	History     []persistedEntry `json:"history"`
	LastUpdated string           `json:"lastUpdated"`
}

type persistedEntry struct {
	EventID     string `json:"eventId"`
	AmountDelta int    `json:"amountDelta"`
	Timestamp   string `json:"timestamp"`
	SourceSKU   string `json:"sourceSku,omitempty"`
}

// legacyRecord is the flat shape written by the first deployment:
// {"minutes": N}. It carries no history and no timestamps.
type legacyRecord struct {
	Minutes *int `json:"minutes"`
}

type decodeOutcome int

const (
	recordOK decodeOutcome = iota
	recordLegacy
	recordBad
)

// decodeRecord distinguishes a valid record, a legacy shape needing
// migration, and unparsable data. Callers reinitialize on recordBad rather
// than propagating a decode error; unparsable legacy data is an observed
// production failure mode, not a hypothetical.
func decodeRecord(identity string, raw []byte) (*domain.Record, decodeOutcome) {
	var pr persistedRecord
	if err := json.Unmarshal(raw, &pr); err == nil && pr.Balance != nil && *pr.Balance >= 0 {
		history := make([]domain.Entry, 0, len(pr.History))
		for _, e := range pr.History {
			at, _ := time.Parse(time.RFC3339, e.Timestamp)
			history = append(history, domain.Entry{
				EventID:   e.EventID,
				Delta:     e.AmountDelta,
				At:        at,
				SourceSKU: e.SourceSKU,
			})
		}
		lastUpdated, _ := time.Parse(time.RFC3339, pr.LastUpdated)
		return domain.Reconstruct(identity, *pr.Balance, history, lastUpdated), recordOK
	}

	var lr legacyRecord
	if err := json.Unmarshal(raw, &lr); err == nil && lr.Minutes != nil && *lr.Minutes >= 0 {
		return domain.Reconstruct(identity, *lr.Minutes, nil, time.Time{}), recordLegacy
	}

	return nil, recordBad
}

func encodeRecord(rec *domain.Record) ([]byte, error) {
	history := rec.History()
	entries := make([]persistedEntry, 0, len(history))
	for _, e := range history {
		entries = append(entries, persistedEntry{
			EventID:     e.EventID,
			AmountDelta: e.Delta,
			Timestamp:   e.At.UTC().Format(time.RFC3339),
			SourceSKU:   e.SourceSKU,
		})
	}

	balance := rec.Balance()
	return json.Marshal(persistedRecord{
		Identity:    rec.Identity(),
		Balance:     &balance,
		History:     entries,
		LastUpdated: rec.LastUpdated().UTC().Format(time.RFC3339),
	})
}
