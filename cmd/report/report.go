// Package report handles rendering spending reports
package report

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/validation"
)

var format string

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Render a spending report",
	Long: `Render a report of spending per month, either as plain text or as
JSON. The report is printed to stdout unless --output names a file.`,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().StringVar(&format, "format", "text", "Report format: text or json")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	if err := validation.IsValidReportFormat(format); err != nil {
		return err
	}

	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	data, err := report.NewGenerator(root.Log).Generate(l, format)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	output := root.SharedFlags.Output
	if output == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	if err := fileutils.WriteFile(output, data, models.PermissionExportFile); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	root.Log.Info("report written",
		logging.Field{Key: logging.FieldFile, Value: output},
		logging.Field{Key: logging.FieldFormat, Value: format})
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
	return nil
}
