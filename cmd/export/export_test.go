package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/ledger"
)

func setupTest(t *testing.T) (*cobra.Command, string, *bytes.Buffer, func()) {
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

	return testRootCmd, tempDir, outBuf, func() {
		root.Cfg = origCfg
		root.AppContainer = origContainer
		root.SharedFlags = origFlags
	}
}

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.RunE)
}

func TestExportCommand_NoData(t *testing.T) {
	testRootCmd, tempDir, outBuf, teardown := setupTest(t)
	defer teardown()
	root.SharedFlags.Output = filepath.Join(tempDir, "out.csv")

	testRootCmd.SetArgs([]string{"export"})
	require.NoError(t, testRootCmd.Execute())

	assert.Contains(t, outBuf.String(), "No data")
	assert.NoFileExists(t, root.SharedFlags.Output)
}

func TestExportCommand_WritesCSV(t *testing.T) {
	testRootCmd, tempDir, outBuf, teardown := setupTest(t)
	defer teardown()

	l := ledger.New()
	_, err := l.Add(ledger.ExpenseInput{Date: "2024-01-15", Category: "Food", Amount: "12.50", Description: "Lunch"})
	require.NoError(t, err)
	_, err = l.Add(ledger.ExpenseInput{Date: "2024-01-20", Category: "Transport", Amount: "2.75", Description: "Bus"})
	require.NoError(t, err)
	require.NoError(t, root.AppContainer.GetStore().Save(l))

	output := filepath.Join(tempDir, "out.csv")
	root.SharedFlags.Output = output

	testRootCmd.SetArgs([]string{"export"})
	require.NoError(t, testRootCmd.Execute())

	assert.Contains(t, outBuf.String(), "Exported 2 expenses to "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	content := string(data)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,date,category,amount,description", lines[0])
	assert.Contains(t, content, "2024-01-15,Food,12.5,Lunch")
	assert.Contains(t, content, "2024-01-20,Transport,2.75,Bus")
}
