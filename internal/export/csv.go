package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"impactrack/internal/models"
)

// The header rows mirror the JSON field names of each record type, in
// declaration order. encoding/csv applies RFC 4180 quoting, so fields
// containing commas or quotes round-trip.

// ParticipantsCSV writes the participant collection to w as CSV.
func ParticipantsCSV(w io.Writer, participants []models.Participant) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "name", "email", "phone", "program", "startDate", "progress",
		"status", "notes", "attendance", "revenue", "jobsCreated",
		"createdAt", "updatedAt",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write participants header: %w", err)
	}
	for _, p := range participants {
		updated := ""
		if p.UpdatedAt != 0 {
			updated = strconv.FormatInt(p.UpdatedAt, 10)
		}
		record := []string{
			p.ID, p.Name, p.Email, p.Phone, p.Program, p.StartDate,
			strconv.Itoa(p.Progress), string(p.Status), p.Notes,
			strconv.Itoa(p.Attendance), p.Revenue.String(),
			strconv.Itoa(p.JobsCreated), strconv.FormatInt(p.CreatedAt, 10),
			updated,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write participant %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// BudgetItemsCSV writes the budget collection to w as CSV.
func BudgetItemsCSV(w io.Writer, items []models.BudgetItem) error {
	cw := csv.NewWriter(w)
	header := []string{"category", "amount", "priority", "description", "dateAdded", "createdAt"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write budget header: %w", err)
	}
	for _, item := range items {
		record := []string{
			item.Category, item.Amount.String(), item.Priority,
			item.Description, item.DateAdded,
			strconv.FormatInt(item.CreatedAt, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write budget item %s: %w", item.Category, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExpensesCSV writes the expense collection to w as CSV.
func ExpensesCSV(w io.Writer, expenses []models.Expense) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "category", "amount", "date", "description", "createdAt"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write expenses header: %w", err)
	}
	for _, e := range expenses {
		record := []string{
			e.ID, e.Category, e.Amount.String(), e.Date, e.Description,
			strconv.FormatInt(e.CreatedAt, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write expense %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
