package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"impactrack/internal/service"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage budget lines",
}

var budgetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a budget line",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		in := service.BudgetItemInput{}
		in.Category, _ = flags.GetString("category")
		in.Amount, _ = flags.GetString("amount")
		in.Priority, _ = flags.GetString("priority")
		in.Description, _ = flags.GetString("description")

		item, err := tracker.CreateBudgetItem(in)
		if err != nil {
			return err
		}
		fmt.Printf("Budgeted %s for %s (%s)\n", item.Amount.String(), item.Category, item.Priority)
		return nil
	},
}

var budgetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List budget lines with their positions",
	RunE: func(*cobra.Command, []string) error {
		items := tracker.BudgetItems().All()
		if len(items) == 0 {
			fmt.Println("No budget lines yet.")
			return nil
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tCATEGORY\tAMOUNT\tPRIORITY\tADDED\tDESCRIPTION")
		for i, item := range items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				i, item.Category, item.Amount.String(), item.Priority, item.DateAdded, item.Description)
		}
		return tw.Flush()
	},
}

var budgetRemoveCmd = &cobra.Command{
	Use:   "remove <position>",
	Short: "Remove the budget line at a position (see budget list)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("position must be a number: %q", args[0])
		}
		if err := tracker.RemoveBudgetItem(index); err != nil {
			return err
		}
		fmt.Printf("Removed budget line %d\n", index)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(budgetCmd)
	budgetCmd.AddCommand(budgetAddCmd, budgetListCmd, budgetRemoveCmd)

	flags := budgetAddCmd.Flags()
	flags.String("category", "", "category name, unique (required)")
	flags.String("amount", "", "allocated amount (required)")
	flags.String("priority", "", "priority label, e.g. High, Medium, Low (required)")
	flags.String("description", "", "free-text description")
}
