// Package undo handles reverting the last saved change
package undo

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/ledgererror"
)

// Cmd represents the undo command
var Cmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the last change to the ledger",
	Long: `Revert the last change by promoting the backup file to the current
state. Exactly one level of history is kept, so a second undo toggles
back to the state before the first one.`,
	RunE: undoFunc,
}

func undoFunc(cmd *cobra.Command, args []string) error {
	if root.AppContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	l, err := root.AppContainer.GetStore().Undo()
	if err != nil {
		var noBackup *ledgererror.NoBackupError
		if errors.As(err, &noBackup) {
			fmt.Fprintln(cmd.OutOrStdout(), "No backup to undo")
			return nil
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Undo successful, %d expenses on record\n", l.Count())
	return nil
}
