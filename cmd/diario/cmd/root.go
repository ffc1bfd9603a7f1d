package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diario/internal/adapters/tui"
	"diario/internal/app"
	"diario/internal/application"
	"diario/internal/config"
	"diario/internal/journal"
	"diario/internal/logging"
)

var (
	ownerFlag  string
	driverFlag string
	dsnFlag    string
	verbose    bool

	session *app.Session
)

var rootCmd = &cobra.Command{
	Use:   "diario",
	Short: "A travel journal: countries, cities and pages",
	Long: `diario keeps a travel journal organized as countries, cities and pages.

The journal is stored remotely (SQLite by default, or Postgres) and mirrored
locally, so every command starts from the last known tree.

Configuration comes from .diario.yaml and DIARIO_* environment variables
(DIARIO_OWNER, DIARIO_DRIVER, DIARIO_DSN, DIARIO_DATA_DIR, DIARIO_LOG_LEVEL).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if ownerFlag != "" {
			cfg.Owner = ownerFlag
		}
		if driverFlag != "" {
			cfg.Driver = driverFlag
		}
		if dsnFlag != "" {
			cfg.DSN = dsnFlag
		}
		if verbose {
			cfg.LogLevel = "debug"
		}

		logger, err := logging.Console(os.Stderr, cfg.LogLevel)
		if err != nil {
			return err
		}

		session, err = app.Open(cmd.Context(), cfg, logger, tui.NewNotifier(os.Stdout))
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if session == nil {
			return nil
		}
		return session.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// journal failures were already reported by the notifier
		if !reported(err) {
			fmt.Fprintln(os.Stderr, tui.RenderMessage(err.Error(), true))
		}
		os.Exit(1)
	}
}

func reported(err error) bool {
	return application.IsValidation(err) || application.IsRemote(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ownerFlag, "owner", "", "identity to act as (overrides DIARIO_OWNER)")
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "remote store driver: sqlite, postgres or memory")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "remote store location")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// GetJournal returns the initialized journal
func GetJournal() *journal.Journal {
	return session.Journal
}
