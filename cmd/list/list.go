// Package list handles listing recorded expenses
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/cli"
	"fjacquet/expense-tracker/internal/models"
)

var limit int

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses, newest first",
	Long: `List recorded expenses ordered by date, newest first. Use --limit
to cap the number of rows shown.`,
	RunE: listFunc,
}

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of expenses to show (0 shows all)")
}

func listFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	expenses := l.Find(models.Filter{})
	if len(expenses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No expenses")
		return nil
	}

	total := len(expenses)
	if limit > 0 && limit < total {
		expenses = expenses[:limit]
	}

	fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.ExpenseTable("Expenses", expenses)))
	if len(expenses) < total {
		fmt.Fprintln(cmd.OutOrStdout(), cli.RenderMuted(fmt.Sprintf("Showing %d of %d expenses", len(expenses), total)))
	}
	return nil
}
