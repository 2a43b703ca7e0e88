package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/expense-tracker/internal/models"
)

func buildExpense(t *testing.T, id, date, category, amount, description string) models.Expense {
	t.Helper()
	e, err := models.NewExpenseBuilder().
		WithID(id).
		WithDate(date).
		WithCategory(category).
		WithAmountFromString(amount).
		WithDescription(description).
		Build()
	require.NoError(t, err)
	return e
}

func TestSetDelimiter(t *testing.T) {
	defer SetDelimiter(',')

	SetDelimiter(';')

	assert.Equal(t, ';', Delimiter)
}

func TestReadCSVFile(t *testing.T) {
	dir := t.TempDir()
	csvContent := `id,date,category,amount,description
e1,2024-01-15,Food,12.5,lunch
e2,2024-01-16,Transport,3.75,bus ticket`
	path := filepath.Join(dir, "expenses.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvContent), 0600))

	rows, err := ReadCSVFile[models.ExpenseCSV](path)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "e1", rows[0].ID)
	assert.Equal(t, "2024-01-15", rows[0].Date)
	assert.Equal(t, "Food", rows[0].Category)
	assert.Equal(t, "12.5", rows[0].Amount)
	assert.Equal(t, "lunch", rows[0].Description)
}

func TestReadCSVFile_FileNotFound(t *testing.T) {
	_, err := ReadCSVFile[models.ExpenseCSV](filepath.Join(t.TempDir(), "missing.csv"))

	assert.Error(t, err)
}

func TestWriteExpensesToCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "expenses.csv")
	expenses := []models.Expense{
		buildExpense(t, "e1", "2024-01-15", "Food", "12.50", "lunch"),
		buildExpense(t, "e2", "2024-01-16", "Transport", "7.305", "shared taxi"),
	}

	err := WriteExpensesToCSV(expenses, path)

	require.NoError(t, err)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,date,category,amount,description", lines[0])
	// Full precision survives the export.
	assert.Contains(t, lines[2], "7.305")
}

func TestWriteExpensesToCSV_Nil(t *testing.T) {
	err := WriteExpensesToCSV(nil, filepath.Join(t.TempDir(), "out.csv"))

	assert.Error(t, err)
}

func TestWriteExpensesToCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	err := WriteExpensesToCSV([]models.Expense{}, path)

	require.NoError(t, err)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "id,date,category,amount,description", strings.TrimSpace(string(data)))
}

func TestWriteExpensesToCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.csv")
	expenses := []models.Expense{
		buildExpense(t, "e1", "2024-01-15", "Food", "12.50", "lunch, with dessert"),
		buildExpense(t, "e2", "2024-01-16", "Transport", "3.75", `the "express" bus`),
	}

	require.NoError(t, WriteExpensesToCSV(expenses, path))
	rows, err := ReadCSVFile[models.ExpenseCSV](path)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	for i, row := range rows {
		assert.Equal(t, expenses[i].ID, row.ID)
		assert.Equal(t, expenses[i].Date.String(), row.Date)
		assert.Equal(t, expenses[i].Category, row.Category)
		assert.Equal(t, expenses[i].Amount.String(), row.Amount)
		assert.Equal(t, expenses[i].Description, row.Description)
	}
}

func TestWriteExpensesToCSV_CustomDelimiter(t *testing.T) {
	defer SetDelimiter(',')
	SetDelimiter(';')

	path := filepath.Join(t.TempDir(), "semicolon.csv")
	expenses := []models.Expense{
		buildExpense(t, "e1", "2024-01-15", "Food", "12.50", "lunch"),
	}

	require.NoError(t, WriteExpensesToCSV(expenses, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "id;date;category;amount;description", lines[0])
}
