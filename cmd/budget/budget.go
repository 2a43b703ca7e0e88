// Package budget handles monthly budget limits
package budget

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/amountutils"
	"fjacquet/expense-tracker/internal/cli"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/report"
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Set and check monthly budgets",
	Long: `Set a spending limit for a month or check how spending compares to
the configured limit.`,
}

var setCmd = &cobra.Command{
	Use:   "set <month> <amount>",
	Short: "Set the budget limit for a month",
	Args:  cobra.ExactArgs(2),
	RunE:  setFunc,
}

var statusCmd = &cobra.Command{
	Use:   "status [month]",
	Short: "Show spending against the budget of a month",
	Long: `Show spending against the budget of a month, the current month by
default. When spending exceeds the limit an alert line is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: statusFunc,
}

func init() {
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(statusCmd)
}

func setFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	limit, err := amountutils.ParseAmount(args[1])
	if err != nil {
		return err
	}
	if err := l.SetBudget(args[0], limit); err != nil {
		return err
	}
	if err := common.SaveLedger(root.AppContainer, l); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s set to %s\n", args[0], amountutils.FormatAmountGrouped(limit))
	return nil
}

func statusFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	month := dateutils.CurrentMonthKey()
	if len(args) == 1 {
		month = args[0]
	}

	status, err := report.CheckBudget(l, month)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.Table{
		Title: "Budget Status",
		Rows:  cli.BudgetRows(status),
	}))
	if status.Configured {
		fmt.Fprintln(cmd.OutOrStdout(), "  "+cli.RenderBudgetBar(status.Spent, status.Limit, 30))
	}
	if alert := cli.BudgetAlert(status); alert != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cli.RenderAlert(alert))
	}
	return nil
}
