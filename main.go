package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/expense-tracker/cmd/add"
	"fjacquet/expense-tracker/cmd/backup"
	"fjacquet/expense-tracker/cmd/budget"
	"fjacquet/expense-tracker/cmd/categories"
	"fjacquet/expense-tracker/cmd/clear"
	"fjacquet/expense-tracker/cmd/edit"
	"fjacquet/expense-tracker/cmd/export"
	"fjacquet/expense-tracker/cmd/importcsv"
	"fjacquet/expense-tracker/cmd/list"
	"fjacquet/expense-tracker/cmd/remove"
	"fjacquet/expense-tracker/cmd/report"
	"fjacquet/expense-tracker/cmd/restore"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/cmd/search"
	"fjacquet/expense-tracker/cmd/stats"
	"fjacquet/expense-tracker/cmd/summary"
	"fjacquet/expense-tracker/cmd/undo"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is handed out
	configureLogLevelDirectly()

	// 3. Now that logging is configured, initialize the root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(search.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importcsv.Cmd)
	root.Cmd.AddCommand(undo.Cmd)
	root.Cmd.AddCommand(backup.Cmd)
	root.Cmd.AddCommand(restore.Cmd)
	root.Cmd.AddCommand(clear.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	// Load .env file silently without logging
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances before the config layer takes over
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("EXPENSES_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = os.Getenv("LOG_LEVEL")
	}
	if logLevelStr == "" {
		logLevelStr = "info" // Default log level
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		// Don't log here, just use default info level if we can't parse
		logLevel = logrus.InfoLevel
	}

	// Set the global logrus level BEFORE any logging happens
	logrus.SetLevel(logLevel)
	logging.SetDefaultLogger(logging.NewLogrusAdapter(logLevel.String(), "text"))
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
