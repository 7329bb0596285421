package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"impactrack/internal/models"
	"impactrack/internal/service"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and list expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		in := service.ExpenseInput{}
		in.Category, _ = flags.GetString("category")
		in.Amount, _ = flags.GetString("amount")
		in.Date, _ = flags.GetString("date")
		in.Description, _ = flags.GetString("description")

		e, err := tracker.CreateExpense(in)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s: %s against %s\n", e.ID, e.Amount.String(), e.Category)
		return nil
	},
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	RunE: func(*cobra.Command, []string) error {
		expenses := tracker.Expenses().All()
		if len(expenses) == 0 {
			fmt.Println("No expenses yet.")
			return nil
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCATEGORY\tAMOUNT\tDATE\tDESCRIPTION")
		for _, e := range expenses {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				e.ID, e.Category, e.Amount.String(), e.Date, e.Description)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(expenseCmd)
	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd)

	flags := expenseAddCmd.Flags()
	flags.String("category", "", "budget category the spend belongs to (required)")
	flags.String("amount", "", "spend amount (required)")
	flags.String("date", "", "spend date, "+models.DateLayout+" (required)")
	flags.String("description", "", "what the money was spent on (required)")
}
