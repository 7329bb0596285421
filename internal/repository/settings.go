package repository

import (
	"impactrack/internal/models"
	"impactrack/internal/storage"
)

// Settings owns the single preferences record.
type Settings struct {
	adapter *storage.Adapter
	current models.Settings
}

// NewSettings creates the repository and loads the persisted record,
// defaulting on first load.
func NewSettings(adapter *storage.Adapter) *Settings {
	r := &Settings{adapter: adapter}
	r.Reload()
	return r
}

// Reload replaces the in-memory record from storage.
func (r *Settings) Reload() {
	r.current = storage.Get(r.adapter, storage.KeySettings, models.DefaultSettings())
}

// Persist writes the record.
func (r *Settings) Persist() error {
	if !r.adapter.Set(storage.KeySettings, r.current) {
		return &storage.StorageError{Op: "write", Key: storage.KeySettings}
	}
	return nil
}

// Current returns the in-memory record.
func (r *Settings) Current() models.Settings { return r.current }

// SetTheme updates the theme preference in memory.
func (r *Settings) SetTheme(t models.Theme) { r.current.Theme = t }

// Replace substitutes the record. Used by backup import.
func (r *Settings) Replace(s models.Settings) { r.current = s }
