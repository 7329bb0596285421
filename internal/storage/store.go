// Package storage provides abstractions for persistent data storage.
package storage

import (
	"errors"
	"fmt"
)

// Slot names for the persisted collections. Every collection lives in its
// own slot; there is no transaction boundary across slots.
const (
	KeyParticipants = "participants"
	KeyBudgetItems  = "budgetItems"
	KeyExpenses     = "expenses"
	KeySettings     = "settings"
)

// ErrNotFound is returned by KV.Get for a slot that has never been written.
var ErrNotFound = errors.New("storage: key not found")

// KV is the interface to the underlying key-value persistence mechanism.
// Implementations store opaque payloads under named slots; serialization and
// failure policy live in the Adapter on top. This abstraction allows
// swapping backends (SQLite, in-memory, etc.) without touching the
// repositories.
type KV interface {
	// Get returns the payload stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set writes payload under key, replacing any previous value. A failed
	// Set leaves the previous value untouched.
	Set(key string, payload []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// StorageError reports a failed read or write of one slot. It is the error
// mutation operations surface when a persist fails.
type StorageError struct {
	Op  string // "read" or "write"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage %s %q failed", e.Op, e.Key)
	}
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
