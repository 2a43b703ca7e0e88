// Package add handles recording new expenses
package add

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/cli"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

var (
	amount      string
	category    string
	date        string
	description string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Long: `Record a new expense in the ledger. The amount is required; the
category defaults to the configured one and the date to today. The
change is saved immediately and can be undone with the undo command.`,
	RunE: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Expense amount, e.g. 12.50 (required)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Expense category (defaults to the configured category)")
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Expense date, e.g. 2024-01-15 (defaults to today)")
	Cmd.Flags().StringVarP(&description, "description", "n", "", "Free-text description")
	_ = Cmd.MarkFlagRequired("amount")
}

func addFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	input := ledger.ExpenseInput{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
	}
	if input.Category == "" {
		input.Category = root.Cfg.Categories.Default
	}
	if input.Date == "" {
		input.Date = dateutils.ToISODate(time.Now())
	}

	expense, err := l.Add(input)
	if err != nil {
		return err
	}
	if err := common.SaveLedger(root.AppContainer, l); err != nil {
		return err
	}

	root.Log.Info("expense recorded",
		logging.Field{Key: logging.FieldExpenseID, Value: expense.ID},
		logging.Field{Key: logging.FieldCategory, Value: expense.Category},
		logging.Field{Key: logging.FieldAmount, Value: expense.Amount.String()})

	fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.ExpenseTable("Added", []models.Expense{expense})))
	common.ShowBudgetAlert(cmd, l, expense.MonthKey())
	return nil
}
