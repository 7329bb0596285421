package repository

import (
	"impactrack/internal/models"
	"impactrack/internal/storage"
)

// Expenses owns the expense collection.
type Expenses struct {
	adapter *storage.Adapter
	items   []models.Expense
}

// NewExpenses creates the repository and loads the persisted collection.
func NewExpenses(adapter *storage.Adapter) *Expenses {
	r := &Expenses{adapter: adapter}
	r.Reload()
	return r
}

// Reload replaces the in-memory collection from storage.
func (r *Expenses) Reload() {
	r.items = load[models.Expense](r.adapter, storage.KeyExpenses)
}

// Persist writes the whole collection in a single slot write.
func (r *Expenses) Persist() error {
	return persist(r.adapter, storage.KeyExpenses, r.items)
}

// All returns a copy of the current collection in insertion order.
func (r *Expenses) All() []models.Expense {
	return snapshot(r.items)
}

// Len returns the collection size.
func (r *Expenses) Len() int { return len(r.items) }

// NextID generates the next expense identifier.
func (r *Expenses) NextID() string {
	ids := make([]string, len(r.items))
	for i, e := range r.items {
		ids[i] = e.ID
	}
	return nextID(ids, models.ExpenseIDPrefix)
}

// Append adds e to the in-memory collection.
func (r *Expenses) Append(e models.Expense) {
	r.items = append(r.items, e)
}

// Replace substitutes the whole collection. Used by backup import.
func (r *Expenses) Replace(items []models.Expense) {
	r.items = snapshot(items)
}
