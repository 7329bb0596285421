// Package models defines the persisted record types for impactrack.
//
// # Entities
//
//   - Participant: a person enrolled in a programme, tracked from intake to
//     completion along with impact counters (attendance, revenue, jobs).
//   - BudgetItem: one budget line, unique per category.
//   - Expense: one spend record, loosely tied to a budget category by name.
//   - Settings: the single preferences record (theme).
//
// # Design Principles
//
//  1. Records are plain values: no behavior beyond trivial helpers, no
//     pointers between entities. Expenses reference budget categories by
//     name only; the link is not enforced.
//  2. JSON tags define the persisted layout. The same layout is used for the
//     store slots and for the backup file, so an export/import round trip
//     reproduces records exactly.
//  3. Money fields use decimal.Decimal, never floats.
//  4. Timestamps are Unix seconds; calendar dates are YYYY-MM-DD strings.
package models

// DateLayout is the format of all calendar-date fields.
const DateLayout = "2006-01-02"
