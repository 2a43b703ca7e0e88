// Package remove handles deleting recorded expenses
package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/cli"
	"fjacquet/expense-tracker/internal/models"
)

// Cmd represents the delete command
var Cmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense",
	Long: `Delete an expense by its id or by a unique id prefix. Deletion is
destructive and requires the --yes flag. The previous on-disk state
stays available to the undo command.`,
	Args: cobra.ExactArgs(1),
	RunE: removeFunc,
}

func removeFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	expense, err := l.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), cli.RenderTable(cli.ExpenseTable("Expense", []models.Expense{expense})))
	if !common.ConfirmDestructive(cmd, root.SharedFlags.Yes, fmt.Sprintf("delete expense %s", cli.FormatShortID(expense.ID))) {
		return nil
	}

	if _, err := l.Delete(args[0]); err != nil {
		return err
	}
	if err := common.SaveLedger(root.AppContainer, l); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
	return nil
}
