package stats

import (
	"testing"

	"github.com/shopspring/decimal"

	"impactrack/internal/models"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return v
}

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		name         string
		participants []models.Participant
		want         int
	}{
		{"empty collection", nil, 0},
		{
			"one of two completed",
			[]models.Participant{
				{Status: models.StatusCompleted},
				{Status: models.StatusActive},
			},
			50,
		},
		{
			"all completed",
			[]models.Participant{
				{Status: models.StatusCompleted},
				{Status: models.StatusCompleted},
			},
			100,
		},
		{
			"one of three rounds to 33",
			[]models.Participant{
				{Status: models.StatusCompleted},
				{Status: models.StatusActive},
				{Status: models.StatusInactive},
			},
			33,
		},
		{
			"two of three rounds to 67",
			[]models.Participant{
				{Status: models.StatusCompleted},
				{Status: models.StatusCompleted},
				{Status: models.StatusActive},
			},
			67,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuccessRate(tt.participants); got != tt.want {
				t.Errorf("SuccessRate = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProgramCount(t *testing.T) {
	participants := []models.Participant{
		{Program: "Digital Skills"},
		{Program: "Digital Skills"},
		{Program: "Job Readiness"},
	}
	if got := ProgramCount(participants); got != 2 {
		t.Errorf("ProgramCount = %d, want 2", got)
	}
	if got := ProgramCount(nil); got != 0 {
		t.Errorf("ProgramCount(nil) = %d, want 0", got)
	}
}

func TestBudgetUtilization(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.BudgetItem
		expenses []models.Expense
		validate func(t *testing.T, usage map[string]CategoryUsage)
	}{
		{
			name:     "training scenario",
			items:    []models.BudgetItem{{Category: "Training", Amount: decimal.NewFromInt(1000)}},
			expenses: []models.Expense{{Category: "Training", Amount: decimal.NewFromInt(400)}},
			validate: func(t *testing.T, usage map[string]CategoryUsage) {
				u, ok := usage["Training"]
				if !ok {
					t.Fatal("Training missing from usage")
				}
				if !u.Spent.Equal(decimal.NewFromInt(400)) {
					t.Errorf("Spent = %s, want 400", u.Spent)
				}
				if !u.Remaining.Equal(decimal.NewFromInt(600)) {
					t.Errorf("Remaining = %s, want 600", u.Remaining)
				}
				if !u.PercentDefined || u.Percent != 40 {
					t.Errorf("Percent = %d (defined=%v), want 40", u.Percent, u.PercentDefined)
				}
			},
		},
		{
			name:     "zero budget never yields a numeric percentage",
			items:    []models.BudgetItem{{Category: "Outreach", Amount: decimal.Zero}},
			expenses: []models.Expense{{Category: "Outreach", Amount: decimal.NewFromInt(50)}},
			validate: func(t *testing.T, usage map[string]CategoryUsage) {
				u := usage["Outreach"]
				if u.PercentDefined {
					t.Error("PercentDefined = true, want false for zero budget")
				}
				if got := u.PercentString(); got != "N/A" {
					t.Errorf("PercentString = %q, want N/A", got)
				}
				if !u.Remaining.Equal(decimal.NewFromInt(-50)) {
					t.Errorf("Remaining = %s, want -50", u.Remaining)
				}
			},
		},
		{
			name:     "expense categories match case-insensitively",
			items:    []models.BudgetItem{{Category: "Training", Amount: decimal.NewFromInt(100)}},
			expenses: []models.Expense{{Category: "training", Amount: decimal.NewFromInt(25)}},
			validate: func(t *testing.T, usage map[string]CategoryUsage) {
				if u := usage["Training"]; !u.Spent.Equal(decimal.NewFromInt(25)) {
					t.Errorf("Spent = %s, want 25", u.Spent)
				}
			},
		},
		{
			name:     "unbudgeted expense does not invent a category",
			items:    []models.BudgetItem{{Category: "Training", Amount: decimal.NewFromInt(100)}},
			expenses: []models.Expense{{Category: "Travel", Amount: decimal.NewFromInt(25)}},
			validate: func(t *testing.T, usage map[string]CategoryUsage) {
				if _, ok := usage["Travel"]; ok {
					t.Error("Travel present in usage, want budget categories only")
				}
				if u := usage["Training"]; !u.Spent.IsZero() {
					t.Errorf("Spent = %s, want 0", u.Spent)
				}
			},
		},
		{
			name:     "overspend reports negative remaining",
			items:    []models.BudgetItem{{Category: "Training", Amount: decimal.NewFromInt(100)}},
			expenses: []models.Expense{{Category: "Training", Amount: decimal.NewFromInt(150)}},
			validate: func(t *testing.T, usage map[string]CategoryUsage) {
				u := usage["Training"]
				if !u.Remaining.Equal(decimal.NewFromInt(-50)) {
					t.Errorf("Remaining = %s, want -50", u.Remaining)
				}
				if !u.PercentDefined || u.Percent != 150 {
					t.Errorf("Percent = %d, want 150", u.Percent)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BudgetUtilization(tt.items, tt.expenses))
		})
	}
}

func TestBurnForecast(t *testing.T) {
	t.Run("no expenses keeps guarded average at zero", func(t *testing.T) {
		f := BurnForecast([]models.BudgetItem{{Category: "A", Amount: decimal.NewFromInt(100)}}, nil)
		if !f.AverageExpense.IsZero() || !f.ProjectedBurn.IsZero() {
			t.Errorf("AverageExpense = %s, ProjectedBurn = %s, want 0", f.AverageExpense, f.ProjectedBurn)
		}
		if !f.Remaining.Equal(decimal.NewFromInt(100)) {
			t.Errorf("Remaining = %s, want 100", f.Remaining)
		}
	})

	t.Run("totals and average", func(t *testing.T) {
		items := []models.BudgetItem{
			{Category: "A", Amount: decimal.NewFromInt(1000)},
			{Category: "B", Amount: decimal.NewFromInt(500)},
		}
		expenses := []models.Expense{
			{Amount: dec(t, "100.50")},
			{Amount: dec(t, "199.50")},
		}
		f := BurnForecast(items, expenses)
		if !f.TotalBudget.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("TotalBudget = %s, want 1500", f.TotalBudget)
		}
		if !f.TotalExpenses.Equal(decimal.NewFromInt(300)) {
			t.Errorf("TotalExpenses = %s, want 300", f.TotalExpenses)
		}
		if !f.Remaining.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("Remaining = %s, want 1200", f.Remaining)
		}
		if !f.AverageExpense.Equal(decimal.NewFromInt(150)) {
			t.Errorf("AverageExpense = %s, want 150", f.AverageExpense)
		}
		if !f.ProjectedBurn.Equal(f.AverageExpense) {
			t.Errorf("ProjectedBurn = %s, want AverageExpense", f.ProjectedBurn)
		}
	})
}

func TestROI(t *testing.T) {
	t.Run("zero investment leaves percentage undefined", func(t *testing.T) {
		s := ROI([]models.Participant{{Revenue: decimal.NewFromInt(100)}}, nil)
		if s.PercentDefined {
			t.Error("PercentDefined = true, want false")
		}
		if got := s.PercentString(); got != "N/A" {
			t.Errorf("PercentString = %q, want N/A", got)
		}
	})

	t.Run("no participants guards per-participant figures", func(t *testing.T) {
		s := ROI(nil, []models.BudgetItem{{Amount: decimal.NewFromInt(100)}})
		if !s.RevenuePerParticipant.IsZero() || s.JobsPerParticipant != 0 {
			t.Errorf("per participant = %s rev, %.2f jobs, want zero",
				s.RevenuePerParticipant, s.JobsPerParticipant)
		}
	})

	t.Run("full summary", func(t *testing.T) {
		participants := []models.Participant{
			{Revenue: decimal.NewFromInt(3000), JobsCreated: 2},
			{Revenue: decimal.NewFromInt(1500), JobsCreated: 1},
		}
		items := []models.BudgetItem{{Amount: decimal.NewFromInt(3000)}}
		s := ROI(participants, items)
		if !s.Revenue.Equal(decimal.NewFromInt(4500)) {
			t.Errorf("Revenue = %s, want 4500", s.Revenue)
		}
		if s.Jobs != 3 {
			t.Errorf("Jobs = %d, want 3", s.Jobs)
		}
		if !s.PercentDefined || !s.Percent.Equal(decimal.NewFromInt(150)) {
			t.Errorf("Percent = %s (defined=%v), want 150", s.Percent, s.PercentDefined)
		}
		if !s.RevenuePerParticipant.Equal(decimal.NewFromInt(2250)) {
			t.Errorf("RevenuePerParticipant = %s, want 2250", s.RevenuePerParticipant)
		}
		if s.JobsPerParticipant != 1.5 {
			t.Errorf("JobsPerParticipant = %v, want 1.5", s.JobsPerParticipant)
		}
	})
}
