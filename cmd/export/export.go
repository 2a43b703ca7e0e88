// Package export handles writing the ledger out as CSV
package export

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdcommon "fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/common"
	"fjacquet/expense-tracker/internal/validation"
)

const defaultExportFile = "expenses_export.csv"

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all expenses to a CSV file",
	Long: `Export all expenses to a CSV file in the interchange format. Amounts
are written with full precision so a later import reproduces the same
values. The output path defaults to ` + defaultExportFile + `.`,
	RunE: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) error {
	l, err := cmdcommon.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	expenses := l.List()
	if len(expenses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No data")
		return nil
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = defaultExportFile
	}
	if err := validation.IsValidOutputPath(output); err != nil {
		return err
	}
	if err := common.ExportExpensesToCSV(expenses, output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d expenses to %s\n", len(expenses), output)
	return nil
}
