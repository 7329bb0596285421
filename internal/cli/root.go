// Package cli implements the impactrack command tree. The commands are the
// view layer: they render repository snapshots and call the tracker's
// mutation operations, subscribing to refresh notifications through the
// observer registry.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"impactrack/internal/service"
	"impactrack/internal/storage"
	"impactrack/internal/storage/sqlite"
	"impactrack/pkg/logging"
)

var (
	cfgFile string
	store   *sqlite.Store
	tracker *service.Tracker
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "impactrack",
	Short: "Track programme participants, budgets, and expenses from your terminal.",
	Long: `impactrack keeps programme records in a local database: participants and
their outcomes, budget lines, and expenses. It reports success rates, budget
utilization, burn forecasts, and return on investment, and exports CSV and
JSON backups.`,
	SilenceUsage:       true,
	PersistentPreRunE:  openTracker,
	PersistentPostRunE: closeStore,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.impactrack.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "", "Set log level. Available: debug, info, warn, error")
	rootCmd.PersistentFlags().String("db", "", "database file (default is $HOME/.impactrack/impactrack.db)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".impactrack")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	viper.SetDefault("log.level", "info")

	// A missing config file is fine; defaults and flags cover everything.
	_ = viper.ReadInConfig()

	level := viper.GetString("log.level")
	if fromFlag, _ := rootCmd.PersistentFlags().GetString("loglevel"); fromFlag != "" {
		level = fromFlag
	}
	logging.SetupWithLevel(logging.ParseLevel(level))
}

func openTracker(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = viper.GetString("database.path")
	}
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".impactrack", "impactrack.db")
	}

	st, err := sqlite.New(path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	store = st

	tracker = service.NewTracker(storage.NewAdapter(st, slog.Default()), slog.Default())
	tracker.Register(func(e service.Event) {
		slog.Debug("view refresh", "event", e)
	})
	return nil
}

func closeStore(*cobra.Command, []string) error {
	if store == nil {
		return nil
	}
	return store.Close()
}
