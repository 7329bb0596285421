// Package repository owns the persisted entity collections. Each repository
// is the sole source of truth for its collection: Reload replaces the
// in-memory copy from storage, Persist writes the whole collection back in a
// single slot write, and no second cached copy exists anywhere else.
//
// Repositories are not goroutine-safe; a single logical actor drives all
// mutations.
package repository

import (
	"fmt"
	"strconv"
	"strings"

	"impactrack/internal/storage"
)

// idWidth is the minimum zero-padded width of generated sequence numbers.
// Sequences past 999 simply widen.
const idWidth = 3

// nextID scans ids carrying prefix, extracts their numeric suffixes, and
// returns prefix + (max + 1) zero-padded. An empty collection yields suffix
// 1. Malformed suffixes count as 0 and never abort generation.
func nextID(ids []string, prefix string) string {
	max := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil || n < 0 {
			n = 0
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, idWidth, max+1)
}

// load reads a collection slot, falling back to an empty slice on any read
// failure.
func load[T any](adapter *storage.Adapter, key string) []T {
	return storage.Get(adapter, key, []T{})
}

// persist writes a collection slot, converting a failed write into a
// StorageError for the mutation layer to surface.
func persist[T any](adapter *storage.Adapter, key string, items []T) error {
	if !adapter.Set(key, items) {
		return &storage.StorageError{Op: "write", Key: key}
	}
	return nil
}

// snapshot returns a copy so callers cannot alias repository state.
func snapshot[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
