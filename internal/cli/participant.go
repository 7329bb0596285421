package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"impactrack/internal/models"
	"impactrack/internal/service"
)

var participantCmd = &cobra.Command{
	Use:   "participant",
	Short: "Manage programme participants",
}

var participantAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new participant",
	Long: `Register a new participant. The programme must be one of the canonical
names (` + strings.Join(models.Programs, ", ") + `) or "custom" together
with --custom-program.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		in := service.ParticipantInput{}
		in.Name, _ = flags.GetString("name")
		in.Email, _ = flags.GetString("email")
		in.Phone, _ = flags.GetString("phone")
		in.Program, _ = flags.GetString("program")
		in.CustomProgram, _ = flags.GetString("custom-program")
		in.StartDate, _ = flags.GetString("start")
		in.Notes, _ = flags.GetString("notes")

		p, err := tracker.CreateParticipant(in)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s: %s (%s)\n", p.ID, p.Name, p.Program)
		return nil
	},
}

var participantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List participants",
	RunE: func(*cobra.Command, []string) error {
		participants := tracker.Participants().All()
		if len(participants) == 0 {
			fmt.Println("No participants yet.")
			return nil
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPROGRAM\tSTART\tPROGRESS\tSTATUS")
		for _, p := range participants {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d%%\t%s\n",
				p.ID, p.Name, p.Email, p.Program, p.StartDate, p.Progress, p.Status)
		}
		return tw.Flush()
	},
}

var participantCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a participant's programme as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := tracker.MarkCompleted(args[0]); err != nil {
			return err
		}
		fmt.Printf("Marked %s completed\n", args[0])
		return nil
	},
}

var participantRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a participant",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := tracker.RemoveParticipant(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(participantCmd)
	participantCmd.AddCommand(participantAddCmd, participantListCmd, participantCompleteCmd, participantRemoveCmd)

	flags := participantAddCmd.Flags()
	flags.String("name", "", "full name (required)")
	flags.String("email", "", "email address, unique (required)")
	flags.String("phone", "", "phone number")
	flags.String("program", "", "programme name, or \"custom\" (required)")
	flags.String("custom-program", "", "programme name when --program=custom")
	flags.String("start", "", "start date, "+models.DateLayout+" (required)")
	flags.String("notes", "", "free-text notes")
}
