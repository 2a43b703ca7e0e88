// Package summary handles monthly spending summaries
package summary

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/cli"
	"fjacquet/expense-tracker/internal/report"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary [month]",
	Short: "Show spending summarised by category or by month",
	Long: `Show spending for one month broken down by category, or, without a
month argument, the total spent in every month on record.`,
	Args: cobra.MaximumNArgs(1),
	RunE: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		s, err := report.MonthlySummary(l, args[0])
		if err != nil {
			return err
		}
		if s.Count == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No expenses in %s\n", s.Month)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.SummaryTable(s)))
		return nil
	}

	months := report.Overview(l)
	if len(months) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No expenses")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.OverviewTable(months)))

	// Overview is newest first; the sparkline reads oldest to newest.
	values := make([]decimal.Decimal, len(months))
	for i, m := range months {
		values[len(months)-1-i] = m.Total
	}
	fmt.Fprintln(cmd.OutOrStdout(), "  "+cli.RenderSparkline(values))
	return nil
}
