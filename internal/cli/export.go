package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"impactrack/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records to CSV or a JSON backup",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Write participants.csv, budget.csv, and expenses.csv",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, _ := cmd.Flags().GetString("dir")

		files := []struct {
			name  string
			write func(f *os.File) error
		}{
			{"participants.csv", func(f *os.File) error {
				return export.ParticipantsCSV(f, tracker.Participants().All())
			}},
			{"budget.csv", func(f *os.File) error {
				return export.BudgetItemsCSV(f, tracker.BudgetItems().All())
			}},
			{"expenses.csv", func(f *os.File) error {
				return export.ExpensesCSV(f, tracker.Expenses().All())
			}},
		}
		for _, out := range files {
			path := filepath.Join(dir, out.name)
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			if err := out.write(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
		}
		return nil
	},
}

var exportBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a JSON backup of all records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("out")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		b := tracker.ExportBackup()
		if err := export.WriteBackup(f, b); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (export %s)\n", path, b.ExportID)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <backup.json>",
	Short: "Replace all records from a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		b, err := export.ReadBackup(f)
		if err != nil {
			return err
		}
		if err := tracker.ImportBackup(b); err != nil {
			return err
		}
		fmt.Printf("Imported %d participants, %d budget lines, %d expenses\n",
			len(b.Participants), len(b.BudgetItems), len(b.Expenses))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.AddCommand(exportCSVCmd, exportBackupCmd)

	exportCSVCmd.Flags().String("dir", ".", "directory to write the CSV files into")
	exportBackupCmd.Flags().StringP("out", "o", "impactrack-backup.json", "backup file to write")
}
