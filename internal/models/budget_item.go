package models

import "github.com/shopspring/decimal"

// Canonical priority labels. Priority is stored as free text, so other
// labels are accepted.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// BudgetItem is one budget line. Categories are unique case-insensitively
// across the collection; budget items have no identifier of their own and
// are addressed by position.
type BudgetItem struct {
	// Category names the budget line (e.g. "Training").
	Category string `json:"category"`

	// Amount is the allocated budget, never negative.
	Amount decimal.Decimal `json:"amount"`

	// Priority is a label, canonical or free-form.
	Priority string `json:"priority"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// DateAdded is the day the line was added, in DateLayout format.
	DateAdded string `json:"dateAdded"`

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64 `json:"createdAt"`
}
