//go:build unit

package notify_test

import (
	"testing"

	"colpa-mia/internal/infra/notify"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "already international", raw: "+393331234567", want: "+393331234567"},
		{name: "missing plus gains one", raw: "393331234567", want: "+393331234567"},
		{name: "formatting noise stripped", raw: "+39 333 123-45.67", want: "+393331234567"},
		{name: "parenthesized area code", raw: "+1 (415) 555-0123", want: "+14155550123"},
		{name: "whitespace trimmed", raw: "  +393331234567  ", want: "+393331234567"},
		{name: "letters rejected", raw: "+39 333 CALL-ME", want: ""},
		{name: "plus in the middle rejected", raw: "39+3331234567", want: ""},
		{name: "too short", raw: "12345", want: ""},
		{name: "too long", raw: "+1234567890123456", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notify.NormalizePhone(tt.raw))
		})
	}
}

func TestCollectCandidates(t *testing.T) {
	t.Run("preserves first-seen order", func(t *testing.T) {
		got := notify.CollectCandidates([]string{"+393331234567", "+14155550123"})
		assert.Equal(t, []string{"+393331234567", "+14155550123"}, got)
	})

	t.Run("deduplicates after normalization", func(t *testing.T) {
		got := notify.CollectCandidates([]string{"+39 333 123 4567", "393331234567", "+393331234567"})
		assert.Equal(t, []string{"+393331234567"}, got)
	})

	t.Run("drops invalid entries", func(t *testing.T) {
		got := notify.CollectCandidates([]string{"not-a-phone", "", "+393331234567"})
		assert.Equal(t, []string{"+393331234567"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, notify.CollectCandidates(nil))
	})
}
