// Package edit handles updating recorded expenses
package edit

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/cli"
	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/models"
)

var (
	amount      string
	category    string
	date        string
	description string
)

// Cmd represents the edit command
var Cmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update fields of an existing expense",
	Long: `Update one or more fields of an existing expense. The expense is
looked up by its id or by a unique id prefix. Only the fields passed
as flags are changed.`,
	Args: cobra.ExactArgs(1),
	RunE: editFunc,
}

func init() {
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "New amount")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	Cmd.Flags().StringVarP(&date, "date", "d", "", "New date")
	Cmd.Flags().StringVarP(&description, "description", "n", "", "New description")
}

func editFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	changes := ledger.ExpenseChanges{}
	if cmd.Flags().Changed("amount") {
		changes.Amount = &amount
	}
	if cmd.Flags().Changed("category") {
		changes.Category = &category
	}
	if cmd.Flags().Changed("date") {
		changes.Date = &date
	}
	if cmd.Flags().Changed("description") {
		changes.Description = &description
	}
	if changes.IsEmpty() {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to change")
		return nil
	}

	expense, err := l.Edit(args[0], changes)
	if err != nil {
		return err
	}
	if err := common.SaveLedger(root.AppContainer, l); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.ExpenseTable("Updated", []models.Expense{expense})))
	common.ShowBudgetAlert(cmd, l, expense.MonthKey())
	return nil
}
