// Package root contains the root command for the application
package root

import (
	"fjacquet/expense-tracker/internal/categorizer"
	"fjacquet/expense-tracker/internal/common"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/csvparser"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/store"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	File     string
	Backup   string
	Input    string
	Output   string
	Validate bool
	Yes      bool
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cfg is the configuration loaded for this invocation
	Cfg *config.Config

	// AppContainer wires the store and categorizer for command handlers
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "A CLI tool to track personal expenses with budgets, CSV import/export and undo.",
		Long: `expense-tracker records daily expenses in a local JSON ledger.
Every change is saved atomically with a one-generation backup, so the
last operation can always be undone. Expenses can be imported from and
exported to CSV, summarized by month and category, and checked against
per-month budgets.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-tracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			if SharedFlags.File != "" {
				// A file given on the command line wins over the
				// configured data directory.
				cfg.Data.Directory = ""
				cfg.Data.File = SharedFlags.File
			}
			if SharedFlags.Backup != "" {
				cfg.Data.BackupFile = SharedFlags.Backup
			}
			Cfg = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)
			logging.SetDefaultLogger(Log)

			// Hand the configured logger to every package that logs
			store.SetLogger(Log)
			common.SetLogger(Log)
			categorizer.SetLogger(Log)
			csvparser.SetLogger(Log)
			config.SetLogger(Log)

			// The delimiter is validated to a single rune by the config layer
			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

			AppContainer, err = container.NewContainer(cfg)
			if err != nil {
				return err
			}
			return nil
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.File, "file", "f", "", "Data file (overrides the configured location)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Backup, "backup-file", "", "Backup file (overrides the configured location)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before importing")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Yes, "yes", "y", false, "Confirm destructive commands without prompting")
}

// GetContainer returns the container built for this invocation. It is
// nil until the root command's setup has run.
func GetContainer() *container.Container {
	return AppContainer
}
