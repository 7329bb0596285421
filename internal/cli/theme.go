package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Toggle between light and dark theme",
	RunE: func(*cobra.Command, []string) error {
		theme, err := tracker.ToggleTheme()
		if err != nil {
			return err
		}
		fmt.Printf("Theme is now %s\n", theme)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
