// Package stats handles overall spending statistics
package stats

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/cli"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/report"
)

const topCategoryCount = 5

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show count, total, average and top categories",
	RunE:  statsFunc,
}

func statsFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	avg := report.AverageExpense(l, models.Filter{})
	if avg.Count == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No expenses")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.Table{
		Title: "Statistics",
		Rows:  cli.StatsRows(avg),
	}))

	top, err := report.TopCategories(l, "", topCategoryCount)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.TopCategoriesTable(top, 20)))
	return nil
}
