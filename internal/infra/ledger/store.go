package ledger

import (
	"context"
	"log/slog"

	domain "colpa-mia/internal/domain/ledger"
	"colpa-mia/internal/infra"
	"colpa-mia/internal/infra/kv"
	"colpa-mia/internal/pkg/clock"
	"colpa-mia/internal/pkg/errs"
)

const keyPrefix = "ledger:"

// Store persists per-identity minute records as JSON documents in the KV
// store. The read-modify-write in Credit/Debit holds no lock; concurrent
// writers to the same identity can lose updates. That limitation is
// accepted (see the kv package doc): the processed-marker gate upstream is
// what bounds duplicate credits, not this store.
type Store struct {
	kv     kv.Store
	clock  clock.Clock
	logger *slog.Logger
}

func NewStore(store kv.Store, clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{kv: store, clock: clk, logger: logger}
}

// Get never fails on a missing or damaged record: absent keys yield a fresh
// zero-balance record, and unparsable data is reinitialized to the same
// safe default.
func (s *Store) Get(ctx context.Context, identity string) (*domain.Record, error) {
	identity = domain.NormalizeIdentity(identity)
	if identity == "" {
		return nil, errs.Mark(domain.ErrEmptyIdentity, errs.ErrMissingIdentity)
	}

	raw, err := s.kv.Get(ctx, keyPrefix+identity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return domain.NewRecord(identity)
		}
		return nil, errs.Mark(err, errs.ErrLedgerUnavailable)
	}

	rec, outcome := decodeRecord(identity, raw)
	switch outcome {
	case recordOK:
		return rec, nil
	case recordLegacy:
		// Migrated in place on the next write; reads just upgrade the shape.
		s.logger.Info("migrating legacy ledger record", "identity", identity)
		return rec, nil
	default:
		s.logger.Warn("unparsable ledger record, reinitializing",
			"identity", identity,
			"raw_prefix", rawPrefix(raw))
		return domain.NewRecord(identity)
	}
}

// Credit applies a positive minute grant and writes the full record back.
// amount <= 0 is a no-op returning the unchanged record.
func (s *Store) Credit(ctx context.Context, identity string, amount int, sourceEventID, sourceSKU string) (*domain.Record, error) {
	rec, err := s.Get(ctx, identity)
	if err != nil {
		return nil, err
	}

	if !rec.Credit(amount, sourceEventID, sourceSKU, s.clock.Now()) {
		return rec, nil
	}

	if err := s.put(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Debit consumes minutes; ErrInsufficientMinutes when the balance cannot
// cover the amount.
func (s *Store) Debit(ctx context.Context, identity string, amount int, reason string) (*domain.Record, error) {
	rec, err := s.Get(ctx, identity)
	if err != nil {
		return nil, err
	}

	if err := rec.Debit(amount, reason, s.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrInsufficientMinutes)
	}
	if amount <= 0 {
		return rec, nil
	}

	if err := s.put(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) put(ctx context.Context, rec *domain.Record) error {
	encoded, err := encodeRecord(rec)
	if err != nil {
		return infra.WrapStoreErr("failed to encode ledger record", err, infra.KindDecodeFailure)
	}
	if err := s.kv.Put(ctx, keyPrefix+rec.Identity(), encoded); err != nil {
		return errs.Mark(err, errs.ErrLedgerUnavailable)
	}
	return nil
}

func rawPrefix(raw []byte) string {
	const n = 64
	if len(raw) > n {
		return string(raw[:n])
	}
	return string(raw)
}
