package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"impactrack/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard summary",
	RunE: func(*cobra.Command, []string) error {
		participants := tracker.Participants().All()
		items := tracker.BudgetItems().All()
		expenses := tracker.Expenses().All()

		fmt.Printf("Participants: %d   Success rate: %d%%   Programmes: %d\n\n",
			len(participants), stats.SuccessRate(participants), stats.ProgramCount(participants))

		usage := stats.BudgetUtilization(items, expenses)
		if len(items) > 0 {
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tBUDGET\tSPENT\tREMAINING\tUSED")
			for _, item := range items {
				u := usage[item.Category]
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					item.Category, item.Amount.String(), u.Spent.String(),
					u.Remaining.String(), u.PercentString())
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Println()
		}

		f := stats.BurnForecast(items, expenses)
		fmt.Printf("Budget %s, spent %s, remaining %s\n",
			f.TotalBudget.String(), f.TotalExpenses.String(), f.Remaining.String())
		fmt.Printf("Average expense %s, projected burn %s\n\n",
			f.AverageExpense.String(), f.ProjectedBurn.String())

		r := stats.ROI(participants, items)
		fmt.Printf("Investment %s, revenue %s, jobs %d, ROI %s\n",
			r.Investment.String(), r.Revenue.String(), r.Jobs, r.PercentString())
		fmt.Printf("Per participant: revenue %s, jobs %.1f\n",
			r.RevenuePerParticipant.String(), r.JobsPerParticipant)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
