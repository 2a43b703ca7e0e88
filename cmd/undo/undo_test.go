package undo

import (
	"bytes"
	"path/filepath"
	"testing"

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

func TestUndoCommand_Metadata(t *testing.T) {
	assert.Equal(t, "undo", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.RunE)
}

func TestUndoCommand_NoBackup(t *testing.T) {
	testRootCmd, outBuf, teardown := setupTest(t)
	defer teardown()

	testRootCmd.SetArgs([]string{"undo"})
	require.NoError(t, testRootCmd.Execute())
	assert.Contains(t, outBuf.String(), "No backup to undo")
}

func TestUndoCommand_RevertsLastSave(t *testing.T) {
	testRootCmd, outBuf, teardown := setupTest(t)
	defer teardown()
	store := root.AppContainer.GetStore()

	l := ledger.New()
	_, err := l.Add(ledger.ExpenseInput{Date: "2024-01-15", Category: "Food", Amount: "12.50", Description: "Lunch"})
	require.NoError(t, err)
	require.NoError(t, store.Save(l))

	_, err = l.Add(ledger.ExpenseInput{Date: "2024-01-16", Category: "Food", Amount: "8", Description: "Snack"})
	require.NoError(t, err)
	require.NoError(t, store.Save(l))

	testRootCmd.SetArgs([]string{"undo"})
	require.NoError(t, testRootCmd.Execute())

	assert.Contains(t, outBuf.String(), "Undo successful, 1 expenses on record")

	current, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, current.Count())
}

func TestUndoCommand_SecondUndoToggles(t *testing.T) {
	testRootCmd, outBuf, teardown := setupTest(t)
	defer teardown()
	store := root.AppContainer.GetStore()

	l := ledger.New()
	_, err := l.Add(ledger.ExpenseInput{Date: "2024-01-15", Category: "Food", Amount: "12.50", Description: "Lunch"})
	require.NoError(t, err)
	require.NoError(t, store.Save(l))

	_, err = l.Add(ledger.ExpenseInput{Date: "2024-01-16", Category: "Food", Amount: "8", Description: "Snack"})
	require.NoError(t, err)
	require.NoError(t, store.Save(l))

	testRootCmd.SetArgs([]string{"undo"})
	require.NoError(t, testRootCmd.Execute())
	outBuf.Reset()

	testRootCmd.SetArgs([]string{"undo"})
	require.NoError(t, testRootCmd.Execute())
	assert.Contains(t, outBuf.String(), "Undo successful, 2 expenses on record")
}
