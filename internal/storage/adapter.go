package storage

import (
	"encoding/json"
	"errors"
	"log/slog"
)

// Adapter layers JSON serialization and the failure policy the repositories
// rely on over a KV: reads fall back to a caller-supplied default and writes
// report success as a boolean. Failures are logged, never raised.
type Adapter struct {
	kv     KV
	logger *slog.Logger
}

// NewAdapter wraps kv. A nil logger falls back to slog.Default.
func NewAdapter(kv KV, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{kv: kv, logger: logger}
}

// Get reads and unmarshals the slot named key. On a missing slot, corrupt
// payload, or any read failure it returns def; the failure is logged and
// never reaches the caller.
func Get[T any](a *Adapter, key string, def T) T {
	payload, err := a.kv.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.logger.Warn("storage read failed, using default", "key", key, "error", err)
		}
		return def
	}
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		a.logger.Warn("corrupt slot payload, using default", "key", key, "error", err)
		return def
	}
	return v
}

// Set marshals v and writes it under key. It returns false on any failure;
// the previously persisted value is then untouched.
func (a *Adapter) Set(key string, v any) bool {
	payload, err := json.Marshal(v)
	if err != nil {
		a.logger.Error("storage encode failed", "key", key, "error", err)
		return false
	}
	if err := a.kv.Set(key, payload); err != nil {
		a.logger.Error("storage write failed", "key", key, "error", err)
		return false
	}
	return true
}
