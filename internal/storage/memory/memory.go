// Package memory provides an in-memory implementation of the storage.KV
// interface used for tests and ephemeral runs. It supports failure injection
// so the Adapter's fallback behavior can be exercised.
package memory

import (
	"errors"
	"sync"

	"impactrack/internal/storage"
)

// Compile-time contract assertion.
var _ storage.KV = (*Store)(nil)

// ErrInjected is returned by Get/Set when the matching failure flag is set.
var ErrInjected = errors.New("memory: injected failure")

// Store implements storage.KV with a plain map.
type Store struct {
	mu         sync.Mutex
	slots      map[string][]byte
	failReads  bool
	failWrites bool
}

// New creates an empty Store.
func New() *Store {
	return &Store{slots: map[string][]byte{}}
}

// FailReads makes every subsequent Get return ErrInjected.
func (s *Store) FailReads(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failReads = v
}

// FailWrites makes every subsequent Set return ErrInjected.
func (s *Store) FailWrites(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = v
}

// Get returns the payload stored under key.
func (s *Store) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failReads {
		return nil, ErrInjected
	}
	payload, ok := s.slots[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// Set writes payload under key. A failed Set leaves the slot untouched.
func (s *Store) Set(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return ErrInjected
	}
	stored := make([]byte, len(payload))
	copy(stored, payload)
	s.slots[key] = stored
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
