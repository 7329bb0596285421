package repository

import (
	"strings"

	"impactrack/internal/models"
	"impactrack/internal/storage"
)

// BudgetItems owns the budget line collection.
type BudgetItems struct {
	adapter *storage.Adapter
	items   []models.BudgetItem
}

// NewBudgetItems creates the repository and loads the persisted collection.
func NewBudgetItems(adapter *storage.Adapter) *BudgetItems {
	r := &BudgetItems{adapter: adapter}
	r.Reload()
	return r
}

// Reload replaces the in-memory collection from storage.
func (r *BudgetItems) Reload() {
	r.items = load[models.BudgetItem](r.adapter, storage.KeyBudgetItems)
}

// Persist writes the whole collection in a single slot write.
func (r *BudgetItems) Persist() error {
	return persist(r.adapter, storage.KeyBudgetItems, r.items)
}

// All returns a copy of the current collection in insertion order.
func (r *BudgetItems) All() []models.BudgetItem {
	return snapshot(r.items)
}

// Len returns the collection size.
func (r *BudgetItems) Len() int { return len(r.items) }

// HasCategory reports whether a budget line with this category already
// exists. Categories match case-insensitively.
func (r *BudgetItems) HasCategory(category string) bool {
	for _, item := range r.items {
		if strings.EqualFold(item.Category, category) {
			return true
		}
	}
	return false
}

// Append adds item to the in-memory collection.
func (r *BudgetItems) Append(item models.BudgetItem) {
	r.items = append(r.items, item)
}

// RemoveAt deletes the budget line at position i. The caller validates the
// range.
func (r *BudgetItems) RemoveAt(i int) {
	r.items = append(r.items[:i], r.items[i+1:]...)
}

// Replace substitutes the whole collection. Used by backup import.
func (r *BudgetItems) Replace(items []models.BudgetItem) {
	r.items = snapshot(items)
}
