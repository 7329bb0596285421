package repository

import (
	"impactrack/internal/models"
	"impactrack/internal/storage"
)

// Participants owns the participant collection.
type Participants struct {
	adapter *storage.Adapter
	items   []models.Participant
}

// NewParticipants creates the repository and loads the persisted collection.
func NewParticipants(adapter *storage.Adapter) *Participants {
	r := &Participants{adapter: adapter}
	r.Reload()
	return r
}

// Reload replaces the in-memory collection from storage.
func (r *Participants) Reload() {
	r.items = load[models.Participant](r.adapter, storage.KeyParticipants)
}

// Persist writes the whole collection in a single slot write. On failure the
// in-memory collection stays usable but the mutation is not durable.
func (r *Participants) Persist() error {
	return persist(r.adapter, storage.KeyParticipants, r.items)
}

// All returns a copy of the current collection in insertion order.
func (r *Participants) All() []models.Participant {
	return snapshot(r.items)
}

// Len returns the collection size.
func (r *Participants) Len() int { return len(r.items) }

// NextID generates the next participant identifier.
func (r *Participants) NextID() string {
	ids := make([]string, len(r.items))
	for i, p := range r.items {
		ids[i] = p.ID
	}
	return nextID(ids, models.ParticipantIDPrefix)
}

// Append adds p to the in-memory collection. Callers persist separately.
func (r *Participants) Append(p models.Participant) {
	r.items = append(r.items, p)
}

// Remove deletes the participant with the given id, reporting whether it
// existed.
func (r *Participants) Remove(id string) bool {
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// Update applies fn to the stored participant with the given id, reporting
// whether it existed.
func (r *Participants) Update(id string, fn func(*models.Participant)) bool {
	for i := range r.items {
		if r.items[i].ID == id {
			fn(&r.items[i])
			return true
		}
	}
	return false
}

// Replace substitutes the whole collection. Used by backup import.
func (r *Participants) Replace(items []models.Participant) {
	r.items = snapshot(items)
}
