// Package export renders the entity collections into interchange formats:
// one CSV per collection and a single JSON backup holding everything. The
// backup uses the same record layout as the store slots, so writing a backup
// and reading it into fresh repositories reproduces the records exactly.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"impactrack/internal/models"
)

// Version identifies the backup layout.
const Version = "1.0"

// Backup is the on-disk JSON backup document.
type Backup struct {
	// ExportID uniquely identifies one export run.
	ExportID string `json:"exportId"`

	// ExportedAt is the Unix timestamp of the export.
	ExportedAt int64 `json:"exportedAt"`

	// Version is the backup layout version.
	Version string `json:"version"`

	Participants []models.Participant `json:"participants"`
	BudgetItems  []models.BudgetItem  `json:"budgetItems"`
	Expenses     []models.Expense     `json:"expenses"`
	Settings     models.Settings      `json:"settings"`
}

// NewBackup assembles a backup of the given snapshots, stamped with a fresh
// export id and the current time.
func NewBackup(participants []models.Participant, budgetItems []models.BudgetItem, expenses []models.Expense, settings models.Settings) Backup {
	return Backup{
		ExportID:     uuid.New().String(),
		ExportedAt:   time.Now().Unix(),
		Version:      Version,
		Participants: participants,
		BudgetItems:  budgetItems,
		Expenses:     expenses,
		Settings:     settings,
	}
}

// WriteBackup writes b to w as indented JSON.
func WriteBackup(w io.Writer, b Backup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// ReadBackup parses a backup document from r.
func ReadBackup(r io.Reader) (Backup, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Backup{}, fmt.Errorf("cannot parse backup: %w", err)
	}
	if b.Version != Version {
		return Backup{}, fmt.Errorf("unsupported backup version %q", b.Version)
	}
	return b, nil
}
