// Package common contains shared functionality for command handlers
package common

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/expense-tracker/internal/cli"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/report"
)

// LoadLedger reads the current ledger through the container's store and
// applies the configured category case handling.
func LoadLedger(c *container.Container) (*ledger.Ledger, error) {
	if c == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	l, err := c.GetStore().Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	l.SetCaseSensitiveCategories(c.GetConfig().Categorization.CaseSensitive)
	return l, nil
}

// SaveLedger persists the ledger through the container's store.
func SaveLedger(c *container.Container, l *ledger.Ledger) error {
	if err := c.GetStore().Save(l); err != nil {
		return fmt.Errorf("failed to save expenses: %w", err)
	}
	return nil
}

// ShowBudgetAlert prints a warning when the given month has gone over
// its budget. Months without a configured budget stay quiet.
func ShowBudgetAlert(cmd *cobra.Command, l *ledger.Ledger, month string) {
	status, err := report.CheckBudget(l, month)
	if err != nil {
		return
	}
	if alert := cli.BudgetAlert(status); alert != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cli.RenderAlert(alert))
	}
}

// ConfirmDestructive reports whether a destructive command may proceed.
// Without --yes it prints the refusal and the command does nothing.
func ConfirmDestructive(cmd *cobra.Command, yes bool, action string) bool {
	if yes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Refusing to %s without --yes\n", action)
	return false
}
