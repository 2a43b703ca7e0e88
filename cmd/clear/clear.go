// Package clear handles wiping the ledger
package clear

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
)

// Cmd represents the clear command
var Cmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all expenses and budgets",
	Long: `Delete all expenses and budgets. The wiped state stays available to
the undo command. Clearing is destructive and requires the --yes flag.`,
	RunE: clearFunc,
}

func clearFunc(cmd *cobra.Command, args []string) error {
	if root.AppContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	if !common.ConfirmDestructive(cmd, root.SharedFlags.Yes, "clear all expenses") {
		return nil
	}

	if _, err := root.AppContainer.GetStore().Clear(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Cleared")
	return nil
}
