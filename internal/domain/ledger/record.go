package ledger

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyIdentity       = errors.New("ledger identity cannot be empty")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// MaxHistoryEntries bounds the audit trail kept on the record. The balance
// field is authoritative; history is informational, so trimming the tail is
// safe.
const MaxHistoryEntries = 100

type Entry struct {
	EventID   string
	Delta     int
	At        time.Time
	SourceSKU string
}

// Record is the per-identity minute balance. The balance never goes
// negative; credits and debits of zero or less are no-ops, never errors.
type Record struct {
	identity    string
	balance     int
	history     []Entry
	lastUpdated time.Time
}

// NormalizeIdentity canonicalizes a customer email for use as the ledger key.
func NormalizeIdentity(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewRecord(identity string) (*Record, error) {
	identity = NormalizeIdentity(identity)
	if identity == "" {
		return nil, ErrEmptyIdentity
	}
	return &Record{identity: identity}, nil
}

func Reconstruct(identity string, balance int, history []Entry, lastUpdated time.Time) *Record {
	if balance < 0 {
		balance = 0
	}
	return &Record{
		identity:    NormalizeIdentity(identity),
		balance:     balance,
		history:     history,
		lastUpdated: lastUpdated,
	}
}

func (r *Record) Identity() string       { return r.identity }
func (r *Record) Balance() int           { return r.balance }
func (r *Record) LastUpdated() time.Time { return r.lastUpdated }

// History returns the audit entries newest-first.
func (r *Record) History() []Entry {
	out := make([]Entry, len(r.history))
	copy(out, r.history)
	return out
}

// Credit adds amount minutes and prepends a history entry. Returns false
// when amount is zero or negative, leaving the record untouched.
func (r *Record) Credit(amount int, eventID, sourceSKU string, now time.Time) bool {
	if amount <= 0 {
		return false
	}
	r.balance += amount
	r.prepend(Entry{EventID: eventID, Delta: amount, At: now, SourceSKU: sourceSKU})
	r.lastUpdated = now
	return true
}

// Debit subtracts amount minutes. It refuses to drive the balance negative.
func (r *Record) Debit(amount int, reason string, now time.Time) error {
	if amount <= 0 {
		return nil
	}
	if r.balance < amount {
		return ErrInsufficientBalance
	}
	r.balance -= amount
	r.prepend(Entry{EventID: reason, Delta: -amount, At: now})
	r.lastUpdated = now
	return nil
}

func (r *Record) prepend(e Entry) {
	r.history = append([]Entry{e}, r.history...)
	if len(r.history) > MaxHistoryEntries {
		r.history = r.history[:MaxHistoryEntries]
	}
}
