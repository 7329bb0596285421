// Package service implements the validated mutation operations over the
// entity repositories. Every operation validates its input, mutates the
// owning repository, persists, and notifies registered listeners. A failed
// persist surfaces a StorageError and skips notification; the in-memory
// mutation stays in place, it is simply not durable.
package service

import (
	"log/slog"
	"time"

	"impactrack/internal/repository"
	"impactrack/internal/storage"
)

// Tracker bundles the repositories behind the mutation operations.
type Tracker struct {
	participants *repository.Participants
	budget       *repository.BudgetItems
	expenses     *repository.Expenses
	settings     *repository.Settings
	notifier     *Notifier
	logger       *slog.Logger
	now          func() time.Time
}

// NewTracker creates a Tracker over the given store adapter. The
// repositories load their persisted collections immediately. A nil logger
// falls back to slog.Default.
func NewTracker(adapter *storage.Adapter, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		participants: repository.NewParticipants(adapter),
		budget:       repository.NewBudgetItems(adapter),
		expenses:     repository.NewExpenses(adapter),
		settings:     repository.NewSettings(adapter),
		notifier:     &Notifier{},
		logger:       logger,
		now:          time.Now,
	}
}

// Participants exposes the participant repository for read-only view code.
func (t *Tracker) Participants() *repository.Participants { return t.participants }

// BudgetItems exposes the budget repository for read-only view code.
func (t *Tracker) BudgetItems() *repository.BudgetItems { return t.budget }

// Expenses exposes the expense repository for read-only view code.
func (t *Tracker) Expenses() *repository.Expenses { return t.expenses }

// Settings exposes the settings repository for read-only view code.
func (t *Tracker) Settings() *repository.Settings { return t.settings }

// Register subscribes a view listener to mutation notifications.
func (t *Tracker) Register(l Listener) { t.notifier.Register(l) }

// PersistAll writes all four slots. Best effort and non-atomic: each slot is
// an independent write, so an interruption between writes can leave the
// collections mutually inconsistent with each other. Every slot is attempted
// even after a failure; the first error is returned.
func (t *Tracker) PersistAll() error {
	var first error
	for _, persist := range []func() error{
		t.participants.Persist,
		t.budget.Persist,
		t.expenses.Persist,
		t.settings.Persist,
	} {
		if err := persist(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
