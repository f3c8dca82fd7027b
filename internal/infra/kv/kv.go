// Package kv defines the external key-value store boundary. The fulfillment
// pipeline deliberately assumes no transactional primitive beyond an atomic
// create-if-absent; everything above this interface must tolerate lost
// updates under concurrent writers to the same key.
package kv

import "context"

type Store interface {
	// Get returns the raw value for key. A missing key is reported as a
	// StoreError of kind NOT_FOUND, never as a nil/empty success.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put unconditionally overwrites key with value.
	Put(ctx context.Context, key string, value []byte) error

	// SetIfAbsent writes value only when key does not exist yet and reports
	// whether this call created it. This is the only atomic primitive the
	// store is assumed to offer.
	SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error)
}
