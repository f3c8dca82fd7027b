//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"colpa-mia/internal/infra/kv"
	infraledger "colpa-mia/internal/infra/ledger"
	"colpa-mia/internal/pkg/clock"
	"colpa-mia/internal/pkg/errs"
	"colpa-mia/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsumeFixture(t *testing.T) (commands.LedgerCommands, *infraledger.Store) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := infraledger.NewStore(kv.NewMemoryStore(), clock.NewMockClock(testNow), logger)
	return commands.NewLedgerUseCase(store, logger), store
}

func TestConsumeMinutes(t *testing.T) {
	ctx := context.Background()

	t.Run("debits the requested amount", func(t *testing.T) {
		uc, store := newConsumeFixture(t)
		_, err := store.Credit(ctx, "user@example.com", 15, "evt_1", "price_excuse_m")
		require.NoError(t, err)

		view, err := uc.ConsumeMinutes(ctx, "user@example.com", 4)
		require.NoError(t, err)
		assert.Equal(t, 11, view.Balance)
		assert.Equal(t, "user@example.com", view.Identity)
	})

	t.Run("defaults to one minute", func(t *testing.T) {
		uc, store := newConsumeFixture(t)
		_, err := store.Credit(ctx, "user@example.com", 5, "evt_1", "price_excuse_s")
		require.NoError(t, err)

		view, err := uc.ConsumeMinutes(ctx, "user@example.com", 0)
		require.NoError(t, err)
		assert.Equal(t, 4, view.Balance)
	})

	t.Run("insufficient balance is rejected", func(t *testing.T) {
		uc, store := newConsumeFixture(t)
		_, err := store.Credit(ctx, "user@example.com", 2, "evt_1", "price_excuse_s")
		require.NoError(t, err)

		_, err = uc.ConsumeMinutes(ctx, "user@example.com", 3)
		require.ErrorIs(t, err, errs.ErrInsufficientMinutes)

		rec, err := store.Get(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, 2, rec.Balance())
	})
}
