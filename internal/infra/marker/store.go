// Package marker implements the processed-event gate. A marker's presence
// means the corresponding credit has already been applied: markers are
// checked before any credit attempt and written only after the credit
// commits. They are never expired, since duplicate webhook deliveries can
// arrive arbitrarily late. The window between check and write is a known,
// accepted race (see the kv package doc); SetIfAbsent on write keeps the
// marker itself single-writer.
package marker

import (
	"context"

	"colpa-mia/internal/infra"
	"colpa-mia/internal/infra/kv"
)

const (
	keyPrefix = "processed:"
	sentinel  = "done"
)

type Store struct {
	kv kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

// Seen reports whether any of the given keys is already marked. The evt-id
// and payment-intent-id signals are interchangeable: either being present
// is sufficient to skip.
func (s *Store) Seen(ctx context.Context, keys ...string) (bool, error) {
	for _, key := range keys {
		_, err := s.kv.Get(ctx, keyPrefix+key)
		if err == nil {
			return true, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return false, err
		}
	}
	return false, nil
}

// Mark records every key as processed. Must only be called after the credit
// has committed.
func (s *Store) Mark(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if _, err := s.kv.SetIfAbsent(ctx, keyPrefix+key, []byte(sentinel)); err != nil {
			return err
		}
	}
	return nil
}
