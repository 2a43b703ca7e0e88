package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExpenseToCSV(t *testing.T) {
	expense := Expense{
		ID:          "id-42",
		Date:        NewDate(2024, time.February, 3),
		Category:    "Transport",
		Amount:      decimal.RequireFromString("7.305"),
		Description: "tram ticket",
	}

	row := ExpenseToCSV(expense)

	assert.Equal(t, "id-42", row.ID)
	assert.Equal(t, "2024-02-03", row.Date)
	assert.Equal(t, "Transport", row.Category)
	// Full precision is preserved, not rounded for display
	assert.Equal(t, "7.305", row.Amount)
	assert.Equal(t, "tram ticket", row.Description)
}

func TestCSVHeaderAliases(t *testing.T) {
	assert.Equal(t, "amount", CSVHeaderAliases["amt"])
	assert.Equal(t, "description", CSVHeaderAliases["note"])
}
