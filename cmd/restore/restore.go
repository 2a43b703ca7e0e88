// Package restore handles replacing the ledger from a backup file
package restore

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/validation"
)

// Cmd represents the restore command
var Cmd = &cobra.Command{
	Use:   "restore [file]",
	Short: "Replace the ledger with the contents of a backup file",
	Long: `Replace the current ledger with the contents of a backup file. The
file is fully validated before anything is overwritten, and the
replaced state stays available to the undo command. Restoring is
destructive and requires the --yes flag.`,
	Args: cobra.MaximumNArgs(1),
	RunE: restoreFunc,
}

func restoreFunc(cmd *cobra.Command, args []string) error {
	if root.AppContainer == nil {
		return fmt.Errorf("container not initialized")
	}

	src := root.SharedFlags.Input
	if len(args) == 1 {
		src = args[0]
	}
	if src == "" {
		return fmt.Errorf("a backup file is required, pass it as an argument or with --input")
	}
	if err := validation.IsValidInputPath(src); err != nil {
		return err
	}

	if !common.ConfirmDestructive(cmd, root.SharedFlags.Yes, fmt.Sprintf("restore from %s", src)) {
		return nil
	}

	l, err := root.AppContainer.GetStore().Restore(src)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Restored %d expenses from %s\n", l.Count(), src)
	return nil
}
