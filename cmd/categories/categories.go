// Package categories handles the category registry
package categories

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/models"
)

var (
	removalMode string
	reassignTo  string
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage the category registry",
	Long: `Manage the categories known to the ledger. Without a subcommand the
registered categories are listed.`,
	RunE: listFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered categories",
	RunE:  listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a category",
	Args:  cobra.ExactArgs(1),
	RunE:  addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a category from the registry",
	Long: `Remove a category from the registry. The --mode flag controls what
happens to expenses still using it: fail refuses the removal, delete
removes them along with the category, reassign moves them to the
category given with --to.`,
	Args: cobra.ExactArgs(1),
	RunE: removeFunc,
}

func init() {
	removeCmd.Flags().StringVar(&removalMode, "mode", string(models.CategoryRemovalFail), "What to do with expenses in the category: fail, delete or reassign")
	removeCmd.Flags().StringVar(&reassignTo, "to", "", "Target category for --mode reassign")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	names := append([]string(nil), l.Categories...)
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Categories: (none)")
		return nil
	}
	sort.Strings(names)
	fmt.Fprintf(cmd.OutOrStdout(), "Categories: %s\n", strings.Join(names, ", "))
	return nil
}

func addFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	if !l.RegisterCategory(args[0]) {
		fmt.Fprintln(cmd.OutOrStdout(), "Category already exists")
		return nil
	}
	if err := common.SaveLedger(root.AppContainer, l); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Category added")
	return nil
}

func removeFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	affected, err := l.RemoveCategory(args[0], models.CategoryRemovalMode(removalMode), reassignTo)
	if err != nil {
		return err
	}
	if err := common.SaveLedger(root.AppContainer, l); err != nil {
		return err
	}

	switch models.CategoryRemovalMode(removalMode) {
	case models.CategoryRemovalDelete:
		fmt.Fprintf(cmd.OutOrStdout(), "Category and its %d expenses removed\n", affected)
	case models.CategoryRemovalReassign:
		fmt.Fprintf(cmd.OutOrStdout(), "Category removed, %d expenses reassigned to %s\n", affected, reassignTo)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "Category removed")
	}
	return nil
}
