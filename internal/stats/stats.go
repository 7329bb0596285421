// Package stats computes derived statistics over the current entity
// collections. All functions are pure: they take snapshots, hold no state,
// and never touch storage. Every division is guarded so no Inf or NaN can
// reach a caller; undefined percentages carry an explicit Defined flag that
// renders as "N/A".
package stats

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"impactrack/internal/models"
)

var hundred = decimal.NewFromInt(100)

// SuccessRate returns the rounded percentage of completed participants, 0
// for an empty collection.
func SuccessRate(participants []models.Participant) int {
	if len(participants) == 0 {
		return 0
	}
	completed := 0
	for _, p := range participants {
		if p.Status == models.StatusCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(participants))))
}

// ProgramCount returns the number of distinct programme names.
func ProgramCount(participants []models.Participant) int {
	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		seen[p.Program] = struct{}{}
	}
	return len(seen)
}

// CategoryUsage is the utilization of one budget category.
type CategoryUsage struct {
	// Spent is the sum of expense amounts matching the category.
	Spent decimal.Decimal

	// Remaining is the budget amount minus Spent; negative when overspent.
	Remaining decimal.Decimal

	// Percent is the rounded utilization percentage. Only meaningful when
	// PercentDefined is true.
	Percent int

	// PercentDefined is false when the budget amount is not positive, i.e.
	// the percentage is undefined.
	PercentDefined bool
}

// PercentString renders Percent for display, "N/A" when undefined.
func (u CategoryUsage) PercentString() string {
	if !u.PercentDefined {
		return "N/A"
	}
	return strconv.Itoa(u.Percent) + "%"
}

// BudgetUtilization returns per-category spend against budget. Expense
// categories match budget categories case-insensitively, mirroring the
// uniqueness rule on budget lines. Expenses against unbudgeted categories do
// not appear; they simply have no budget to report against.
func BudgetUtilization(items []models.BudgetItem, expenses []models.Expense) map[string]CategoryUsage {
	usage := make(map[string]CategoryUsage, len(items))
	for _, item := range items {
		spent := decimal.Zero
		for _, e := range expenses {
			if strings.EqualFold(e.Category, item.Category) {
				spent = spent.Add(e.Amount)
			}
		}
		u := CategoryUsage{Spent: spent, Remaining: item.Amount.Sub(spent)}
		if item.Amount.IsPositive() {
			u.Percent = int(spent.Div(item.Amount).Mul(hundred).Round(0).IntPart())
			u.PercentDefined = true
		}
		usage[item.Category] = u
	}
	return usage
}

// Forecast summarizes overall budget position. ProjectedBurn equals the
// average expense per record; there is no time-series model behind it.
type Forecast struct {
	TotalBudget    decimal.Decimal
	TotalExpenses  decimal.Decimal
	Remaining      decimal.Decimal
	AverageExpense decimal.Decimal
	ProjectedBurn  decimal.Decimal
}

// BurnForecast computes the Forecast summary. AverageExpense is zero when
// there are no expense records.
func BurnForecast(items []models.BudgetItem, expenses []models.Expense) Forecast {
	f := Forecast{
		TotalBudget:    decimal.Zero,
		TotalExpenses:  decimal.Zero,
		AverageExpense: decimal.Zero,
		ProjectedBurn:  decimal.Zero,
	}
	for _, item := range items {
		f.TotalBudget = f.TotalBudget.Add(item.Amount)
	}
	for _, e := range expenses {
		f.TotalExpenses = f.TotalExpenses.Add(e.Amount)
	}
	f.Remaining = f.TotalBudget.Sub(f.TotalExpenses)
	if len(expenses) > 0 {
		f.AverageExpense = f.TotalExpenses.DivRound(decimal.NewFromInt(int64(len(expenses))), 2)
		f.ProjectedBurn = f.AverageExpense
	}
	return f
}

// ROISummary relates programme investment to participant outcomes.
type ROISummary struct {
	// Investment is the sum of all budget amounts.
	Investment decimal.Decimal

	// Revenue is the sum of participant revenue fields.
	Revenue decimal.Decimal

	// Jobs is the sum of participant jobs-created fields.
	Jobs int

	// Percent is revenue over investment as a percentage, rounded to one
	// decimal place. Only meaningful when PercentDefined is true.
	Percent decimal.Decimal

	// PercentDefined is false when Investment is zero.
	PercentDefined bool

	// RevenuePerParticipant is zero when there are no participants.
	RevenuePerParticipant decimal.Decimal

	// JobsPerParticipant is zero when there are no participants.
	JobsPerParticipant float64
}

// PercentString renders Percent for display, "N/A" when undefined.
func (r ROISummary) PercentString() string {
	if !r.PercentDefined {
		return "N/A"
	}
	return r.Percent.String() + "%"
}

// ROI computes the return-on-investment summary.
func ROI(participants []models.Participant, items []models.BudgetItem) ROISummary {
	s := ROISummary{
		Investment:            decimal.Zero,
		Revenue:               decimal.Zero,
		Percent:               decimal.Zero,
		RevenuePerParticipant: decimal.Zero,
	}
	for _, item := range items {
		s.Investment = s.Investment.Add(item.Amount)
	}
	for _, p := range participants {
		s.Revenue = s.Revenue.Add(p.Revenue)
		s.Jobs += p.JobsCreated
	}
	if s.Investment.IsPositive() {
		s.Percent = s.Revenue.Div(s.Investment).Mul(hundred).Round(1)
		s.PercentDefined = true
	}
	if n := len(participants); n > 0 {
		s.RevenuePerParticipant = s.Revenue.DivRound(decimal.NewFromInt(int64(n)), 2)
		s.JobsPerParticipant = float64(s.Jobs) / float64(n)
	}
	return s
}
