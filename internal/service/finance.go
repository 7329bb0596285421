package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"impactrack/internal/models"
)

// BudgetItemInput carries the form fields for a new budget line. Amount
// arrives as text and is parsed here; non-numeric input is a validation
// failure, not a parse panic downstream.
type BudgetItemInput struct {
	Category    string
	Amount      string
	Priority    string
	Description string
}

// CreateBudgetItem validates in, appends the budget line with today's date,
// and persists.
func (t *Tracker) CreateBudgetItem(in BudgetItemInput) (models.BudgetItem, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return models.BudgetItem{}, &ValidationError{Field: "category", Reason: "required"}
	}

	priority := strings.TrimSpace(in.Priority)
	if priority == "" {
		return models.BudgetItem{}, &ValidationError{Field: "priority", Reason: "required"}
	}

	amount, err := parseAmount(in.Amount)
	if err != nil {
		return models.BudgetItem{}, err
	}
	if amount.IsNegative() {
		return models.BudgetItem{}, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}

	if t.budget.HasCategory(category) {
		return models.BudgetItem{}, &ValidationError{Field: "category", Reason: "already budgeted"}
	}

	item := models.BudgetItem{
		Category:    category,
		Amount:      amount,
		Priority:    priority,
		Description: strings.TrimSpace(in.Description),
		DateAdded:   t.now().Format(models.DateLayout),
		CreatedAt:   t.now().Unix(),
	}
	t.budget.Append(item)

	if err := t.budget.Persist(); err != nil {
		t.logger.Error("create budget item: persist failed", "category", category, "error", err)
		return models.BudgetItem{}, err
	}

	t.logger.Info("budget item created", "category", category, "amount", amount.String())
	t.notifier.Notify(EventFinancesChanged)
	return item, nil
}

// RemoveBudgetItem deletes the budget line at the given position and
// persists the remainder. Index-based deletion is safe here because a single
// actor drives all mutations.
func (t *Tracker) RemoveBudgetItem(index int) error {
	if index < 0 || index >= t.budget.Len() {
		return &OutOfRangeError{Index: index, Length: t.budget.Len()}
	}
	t.budget.RemoveAt(index)
	if err := t.budget.Persist(); err != nil {
		t.logger.Error("remove budget item: persist failed", "index", index, "error", err)
		return err
	}
	t.logger.Info("budget item removed", "index", index)
	t.notifier.Notify(EventFinancesChanged)
	return nil
}

// ExpenseInput carries the form fields for a new expense.
type ExpenseInput struct {
	Category    string
	Amount      string
	Date        string
	Description string
}

// CreateExpense validates in, assigns the next expense id, appends, and
// persists. The category is not checked against budget lines; unbudgeted
// categories are allowed and report zero budget downstream.
func (t *Tracker) CreateExpense(in ExpenseInput) (models.Expense, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return models.Expense{}, &ValidationError{Field: "category", Reason: "required"}
	}

	amount, err := parseAmount(in.Amount)
	if err != nil {
		return models.Expense{}, err
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		return models.Expense{}, &ValidationError{Field: "date", Reason: "required"}
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return models.Expense{}, &ValidationError{Field: "date", Reason: "must be " + models.DateLayout}
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return models.Expense{}, &ValidationError{Field: "description", Reason: "required"}
	}

	e := models.Expense{
		ID:          t.expenses.NextID(),
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: description,
		CreatedAt:   t.now().Unix(),
	}
	t.expenses.Append(e)

	if err := t.expenses.Persist(); err != nil {
		t.logger.Error("create expense: persist failed", "id", e.ID, "error", err)
		return models.Expense{}, err
	}

	t.logger.Info("expense created", "id", e.ID, "category", category, "amount", amount.String())
	t.notifier.Notify(EventFinancesChanged)
	return e, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "required"}
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "not a number"}
	}
	return amount, nil
}
