// Package importcsv handles importing expenses from CSV files
package importcsv

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/cli"
	"fjacquet/expense-tracker/internal/csvparser"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/validation"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import expenses from a CSV file",
	Long: `Import expenses from a CSV file. Rows that fail validation are
skipped and reported with their line number; the valid rows are still
imported. Rows identical to an existing expense are skipped as
duplicates. Rows without a category are auto-categorized by keyword.`,
	Args: cobra.MaximumNArgs(1),
	RunE: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input
	if len(args) == 1 {
		input = args[0]
	}
	if input == "" {
		return fmt.Errorf("an input file is required, pass it as an argument or with --input")
	}
	if err := validation.IsValidInputPath(input); err != nil {
		return err
	}

	if root.SharedFlags.Validate {
		valid, err := csvparser.ValidateFormat(input)
		if err != nil {
			return fmt.Errorf("failed to validate CSV format: %w", err)
		}
		if !valid {
			return fmt.Errorf("file %s is not a recognized expense CSV", input)
		}
	}

	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	result, err := csvparser.ParseFile(input, root.AppContainer.ExpenseCategorizer(), root.Cfg.Categories.ImportFallback)
	if err != nil {
		return fmt.Errorf("failed to import CSV file: %w", err)
	}

	added, duplicates := l.Merge(result.Expenses)
	if added > 0 {
		if err := common.SaveLedger(root.AppContainer, l); err != nil {
			return err
		}
	}

	root.Log.Info("import finished",
		logging.Field{Key: logging.FieldFile, Value: input},
		logging.Field{Key: logging.FieldCount, Value: added})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d expenses", added)
	if duplicates > 0 {
		fmt.Fprintf(out, " (%d duplicates skipped)", duplicates)
	}
	fmt.Fprintln(out)

	if len(result.Rejected) > 0 {
		fmt.Fprintln(out, cli.RenderAlert(fmt.Sprintf("Rejected %d rows:", len(result.Rejected))))
		for _, r := range result.Rejected {
			fmt.Fprintf(out, "  %s\n", r.String())
		}
	}
	return nil
}
