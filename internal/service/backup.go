package service

import "impactrack/internal/export"

// ExportBackup assembles a backup of the current collections.
func (t *Tracker) ExportBackup() export.Backup {
	return export.NewBackup(
		t.participants.All(),
		t.budget.All(),
		t.expenses.All(),
		t.settings.Current(),
	)
}

// ImportBackup replaces every collection with the backup's contents and
// persists them all. The write is best-effort and non-atomic, like
// PersistAll.
func (t *Tracker) ImportBackup(b export.Backup) error {
	t.participants.Replace(b.Participants)
	t.budget.Replace(b.BudgetItems)
	t.expenses.Replace(b.Expenses)
	t.settings.Replace(b.Settings)

	if err := t.PersistAll(); err != nil {
		t.logger.Error("import backup: persist failed", "exportId", b.ExportID, "error", err)
		return err
	}

	t.logger.Info("backup imported",
		"exportId", b.ExportID,
		"participants", len(b.Participants),
		"budgetItems", len(b.BudgetItems),
		"expenses", len(b.Expenses),
	)
	t.notifier.Notify(EventParticipantsChanged)
	t.notifier.Notify(EventFinancesChanged)
	t.notifier.Notify(EventSettingsChanged)
	return nil
}
