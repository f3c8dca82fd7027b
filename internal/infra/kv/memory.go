package kv

import (
	"context"
	"sync"

	"colpa-mia/internal/infra"
)

// MemoryStore is an in-process Store used by unit tests. It mirrors the
// Redis implementation's semantics, including atomic SetIfAbsent.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.data[key]
	if !ok {
		return nil, infra.WrapStoreErr("key not found", nil, infra.KindNotFound)
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	return cp, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

func (s *MemoryStore) SetIfAbsent(_ context.Context, key string, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; ok {
		return false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return true, nil
}

// Seed places a raw value directly, bypassing any codec. Tests use it to
// simulate corrupted or legacy records.
func (s *MemoryStore) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}
