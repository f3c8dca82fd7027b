//go:build unit

package ledger_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	domain "colpa-mia/internal/domain/ledger"
	"colpa-mia/internal/infra/kv"
	"colpa-mia/internal/infra/ledger"
	"colpa-mia/internal/pkg/clock"
	"colpa-mia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestStore() (*ledger.Store, *kv.MemoryStore, *clock.MockClock) {
	mem := kv.NewMemoryStore()
	clk := clock.NewMockClock(testNow)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ledger.NewStore(mem, clk, logger), mem, clk
}

func TestStoreGet(t *testing.T) {
	ctx := context.Background()

	t.Run("missing record yields a fresh zero balance", func(t *testing.T) {
		store, _, _ := newTestStore()

		rec, err := store.Get(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Equal(t, "nobody@example.com", rec.Identity())
		assert.Equal(t, 0, rec.Balance())
	})

	t.Run("identity is normalized before lookup", func(t *testing.T) {
		store, _, _ := newTestStore()
		_, err := store.Credit(ctx, "user@example.com", 5, "evt_1", "price_excuse_s")
		require.NoError(t, err)

		rec, err := store.Get(ctx, "  USER@Example.Com ")
		require.NoError(t, err)
		assert.Equal(t, 5, rec.Balance())
	})

	t.Run("empty identity is rejected", func(t *testing.T) {
		store, _, _ := newTestStore()
		_, err := store.Get(ctx, "   ")
		require.ErrorIs(t, err, errs.ErrMissingIdentity)
	})

	t.Run("corrupted record reinitializes to zero", func(t *testing.T) {
		store, mem, _ := newTestStore()
		mem.Seed("ledger:user@example.com", []byte(`{"balance": "lots of`))

		rec, err := store.Get(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, 0, rec.Balance())
		assert.Empty(t, rec.History())
	})

	t.Run("negative persisted balance is treated as corrupt", func(t *testing.T) {
		store, mem, _ := newTestStore()
		mem.Seed("ledger:user@example.com", []byte(`{"identity":"user@example.com","balance":-7,"history":[],"lastUpdated":"2025-06-01T12:00:00Z"}`))

		rec, err := store.Get(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, 0, rec.Balance())
	})

	t.Run("legacy flat record is readable", func(t *testing.T) {
		store, mem, _ := newTestStore()
		mem.Seed("ledger:old@example.com", []byte(`{"minutes": 12}`))

		rec, err := store.Get(ctx, "old@example.com")
		require.NoError(t, err)
		assert.Equal(t, 12, rec.Balance())
		assert.Empty(t, rec.History())
	})
}

func TestStoreCredit(t *testing.T) {
	ctx := context.Background()

	t.Run("credits and persists", func(t *testing.T) {
		store, mem, _ := newTestStore()

		rec, err := store.Credit(ctx, "user@example.com", 15, "evt_1", "price_excuse_m")
		require.NoError(t, err)
		assert.Equal(t, 15, rec.Balance())

		raw, err := mem.Get(ctx, "ledger:user@example.com")
		require.NoError(t, err)

		var persisted struct {
			Identity    string `json:"identity"`
			Balance     int    `json:"balance"`
			LastUpdated string `json:"lastUpdated"`
			History     []struct {
				EventID     string `json:"eventId"`
				AmountDelta int    `json:"amountDelta"`
				SourceSKU   string `json:"sourceSku"`
			} `json:"history"`
		}
		require.NoError(t, json.Unmarshal(raw, &persisted))
		assert.Equal(t, "user@example.com", persisted.Identity)
		assert.Equal(t, 15, persisted.Balance)
		assert.Equal(t, testNow.Format(time.RFC3339), persisted.LastUpdated)
		require.Len(t, persisted.History, 1)
		assert.Equal(t, "evt_1", persisted.History[0].EventID)
		assert.Equal(t, 15, persisted.History[0].AmountDelta)
		assert.Equal(t, "price_excuse_m", persisted.History[0].SourceSKU)
	})

	t.Run("credits accumulate across calls", func(t *testing.T) {
		store, _, clk := newTestStore()

		_, err := store.Credit(ctx, "user@example.com", 5, "evt_1", "price_excuse_s")
		require.NoError(t, err)
		clk.Add(time.Minute)
		rec, err := store.Credit(ctx, "user@example.com", 40, "evt_2", "price_excuse_l")
		require.NoError(t, err)

		assert.Equal(t, 45, rec.Balance())
		history := rec.History()
		require.Len(t, history, 2)
		assert.Equal(t, "evt_2", history[0].EventID)
	})

	t.Run("zero amount writes nothing", func(t *testing.T) {
		store, mem, _ := newTestStore()

		rec, err := store.Credit(ctx, "user@example.com", 0, "evt_1", "")
		require.NoError(t, err)
		assert.Equal(t, 0, rec.Balance())

		_, err = mem.Get(ctx, "ledger:user@example.com")
		require.Error(t, err)
	})

	t.Run("crediting on top of a legacy record migrates the shape", func(t *testing.T) {
		store, mem, _ := newTestStore()
		mem.Seed("ledger:old@example.com", []byte(`{"minutes": 12}`))

		rec, err := store.Credit(ctx, "old@example.com", 5, "evt_1", "price_excuse_s")
		require.NoError(t, err)
		assert.Equal(t, 17, rec.Balance())

		raw, err := mem.Get(ctx, "ledger:old@example.com")
		require.NoError(t, err)

		var persisted struct {
			Balance *int `json:"balance"`
		}
		require.NoError(t, json.Unmarshal(raw, &persisted))
		require.NotNil(t, persisted.Balance)
		assert.Equal(t, 17, *persisted.Balance)
	})
}

func TestStoreDebit(t *testing.T) {
	ctx := context.Background()

	t.Run("debits and persists", func(t *testing.T) {
		store, _, _ := newTestStore()
		_, err := store.Credit(ctx, "user@example.com", 15, "evt_1", "price_excuse_m")
		require.NoError(t, err)

		rec, err := store.Debit(ctx, "user@example.com", 6, "consume")
		require.NoError(t, err)
		assert.Equal(t, 9, rec.Balance())

		rec, err = store.Get(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, 9, rec.Balance())
		assert.Equal(t, -6, rec.History()[0].Delta)
	})

	t.Run("insufficient balance is marked", func(t *testing.T) {
		store, _, _ := newTestStore()
		_, err := store.Credit(ctx, "user@example.com", 5, "evt_1", "price_excuse_s")
		require.NoError(t, err)

		_, err = store.Debit(ctx, "user@example.com", 6, "consume")
		require.ErrorIs(t, err, errs.ErrInsufficientMinutes)
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)

		rec, err := store.Get(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, 5, rec.Balance())
	})

	t.Run("debit from an absent record fails", func(t *testing.T) {
		store, _, _ := newTestStore()
		_, err := store.Debit(ctx, "nobody@example.com", 1, "consume")
		require.ErrorIs(t, err, errs.ErrInsufficientMinutes)
	})
}
