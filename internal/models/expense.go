package models

import "github.com/shopspring/decimal"

// ExpenseIDPrefix prefixes every expense identifier (e.g. "EXP001").
const ExpenseIDPrefix = "EXP"

// Expense is one spend record. Category is expected to match a BudgetItem
// category for reporting, but the link is not enforced: an expense against
// an unbudgeted category simply reports zero budget downstream.
type Expense struct {
	// ID is the unique identifier, ExpenseIDPrefix plus a zero-padded
	// sequence number.
	ID string `json:"id"`

	// Category names the budget line this spend belongs to.
	Category string `json:"category"`

	// Amount is the spend amount.
	Amount decimal.Decimal `json:"amount"`

	// Date is the spend date in DateLayout format.
	Date string `json:"date"`

	// Description is required free text.
	Description string `json:"description"`

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64 `json:"createdAt"`
}
