package budget

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/ledger"
)

func setupTest(t *testing.T) (*cobra.Command, *bytes.Buffer, func()) {
	tempDir := t.TempDir()
	cfg := &config.Config{
		Log:  config.LogConfig{Level: "error", Format: "text"},
		Data: config.DataConfig{File: filepath.Join(tempDir, "expenses.json")},
		CSV:  config.CSVConfig{Delimiter: ","},
		Categories: config.CategoriesConfig{
			File:           "categories.yaml",
			Default:        "Misc",
			ImportFallback: "Imported",
		},
	}
	c, err := container.NewContainer(cfg)
	require.NoError(t, err)

	origCfg := root.Cfg
	origContainer := root.AppContainer
	origFlags := root.SharedFlags
	root.Cfg = cfg
	root.AppContainer = c
	root.SharedFlags = root.CommonFlags{}

	testRootCmd := &cobra.Command{Use: "expense-tracker-test"}
	testRootCmd.AddCommand(Cmd)

	outBuf := new(bytes.Buffer)
	testRootCmd.SetOut(outBuf)
	testRootCmd.SetErr(outBuf)

	return testRootCmd, outBuf, func() {
		root.Cfg = origCfg
		root.AppContainer = origContainer
		root.SharedFlags = origFlags
	}
}

func TestBudgetCommand_Metadata(t *testing.T) {
	assert.Equal(t, "budget", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.True(t, Cmd.HasSubCommands())

	names := make([]string, 0, 2)
	for _, sub := range Cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "set")
	assert.Contains(t, names, "status")
}

func TestBudgetSet_StoresLimit(t *testing.T) {
	testRootCmd, outBuf, teardown := setupTest(t)
	defer teardown()

	testRootCmd.SetArgs([]string{"budget", "set", "2024-01", "500"})
	require.NoError(t, testRootCmd.Execute())

	assert.Contains(t, outBuf.String(), "Budget for 2024-01 set to 500.00")

	l, err := root.AppContainer.GetStore().Load()
	require.NoError(t, err)
	limit, ok := l.Budget("2024-01")
	require.True(t, ok)
	assert.Equal(t, "500", limit.String())
}

func TestBudgetSet_RejectsInvalidMonth(t *testing.T) {
	testRootCmd, _, teardown := setupTest(t)
	defer teardown()

	testRootCmd.SetArgs([]string{"budget", "set", "January", "500"})
	assert.Error(t, testRootCmd.Execute())
}

func TestBudgetSet_RejectsNonPositiveLimit(t *testing.T) {
	testRootCmd, _, teardown := setupTest(t)
	defer teardown()

	testRootCmd.SetArgs([]string{"budget", "set", "2024-01", "0"})
	assert.Error(t, testRootCmd.Execute())
}

func TestBudgetStatus_NotConfigured(t *testing.T) {
	testRootCmd, outBuf, teardown := setupTest(t)
	defer teardown()

	testRootCmd.SetArgs([]string{"budget", "status", "2024-01"})
	require.NoError(t, testRootCmd.Execute())

	output := outBuf.String()
	assert.Contains(t, output, "Not set")
	assert.NotContains(t, output, "Remaining")
	assert.NotContains(t, output, "Alert")
}

func TestBudgetStatus_WithinLimit(t *testing.T) {
	testRootCmd, outBuf, teardown := setupTest(t)
	defer teardown()
	seedMonth(t, "2024-01", "500", "120")

	testRootCmd.SetArgs([]string{"budget", "status", "2024-01"})
	require.NoError(t, testRootCmd.Execute())

	output := outBuf.String()
	assert.Contains(t, output, "120.00")
	assert.Contains(t, output, "500.00")
	assert.Contains(t, output, "Remaining")
	assert.Contains(t, output, "380.00")
	assert.NotContains(t, output, "Alert")
}

func TestBudgetStatus_Exceeded(t *testing.T) {
	testRootCmd, outBuf, teardown := setupTest(t)
	defer teardown()
	seedMonth(t, "2024-01", "500", "620")

	testRootCmd.SetArgs([]string{"budget", "status", "2024-01"})
	require.NoError(t, testRootCmd.Execute())

	output := outBuf.String()
	assert.Contains(t, output, "-120.00")
	assert.Contains(t, output, "Alert: Budget exceeded by 120.00")
}

// seedMonth stores a budget and a single expense for the month.
func seedMonth(t *testing.T, month, limit, spent string) {
	t.Helper()
	l := ledger.New()
	_, err := l.Add(ledger.ExpenseInput{Date: month + "-10", Category: "Food", Amount: spent, Description: "Spending"})
	require.NoError(t, err)
	limitDecimal, err := decimal.NewFromString(limit)
	require.NoError(t, err)
	require.NoError(t, l.SetBudget(month, limitDecimal))
	require.NoError(t, root.AppContainer.GetStore().Save(l))
}
