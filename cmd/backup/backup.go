// Package backup handles copying the data file to a safe location
package backup

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/validation"
)

// Cmd represents the backup command
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the data file to a backup location",
	Long: `Copy the current data file to a backup location, by default next to
the data file with a .backup.json suffix. This copy is independent of
the rolling backup the undo command uses.`,
	RunE: backupFunc,
}

func backupFunc(cmd *cobra.Command, args []string) error {
	if root.AppContainer == nil {
		return fmt.Errorf("container not initialized")
	}
	store := root.AppContainer.GetStore()

	dst := root.SharedFlags.Output
	if dst == "" {
		dst = strings.TrimSuffix(store.DataFile, ".json") + ".backup.json"
	}
	if err := validation.IsValidOutputPath(dst); err != nil {
		return err
	}

	if err := store.ExportBackup(dst); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Backup saved to %s\n", dst)
	return nil
}
