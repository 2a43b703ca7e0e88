// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/expense-tracker/internal/ledgererror"
)

// Expense represents a single spending record. IDs are UUIDs assigned at
// creation and never reused; amounts are exact decimals and always
// strictly positive.
type Expense struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate checks the record invariants. It returns a ValidationError
// naming the offending field.
func (e Expense) Validate() error {
	if e.ID == "" {
		return &ledgererror.ValidationError{Field: "id", Value: "", Reason: "id is required"}
	}
	if e.Date.IsZero() {
		return &ledgererror.ValidationError{Field: "date", Value: "", Reason: "date is required"}
	}
	if !e.Amount.GreaterThan(decimal.Zero) {
		return &ledgererror.ValidationError{
			Field:  "amount",
			Value:  e.Amount.String(),
			Reason: "amount must be greater than zero",
		}
	}
	if e.Category == "" {
		return &ledgererror.ValidationError{Field: "category", Value: "", Reason: "category is required"}
	}
	return nil
}

// MonthKey returns the YYYY-MM key of the month the expense falls in
func (e Expense) MonthKey() string {
	return e.Date.MonthKey()
}

// ContentKey returns a key identifying the expense by content rather than
// id. Two expenses with the same date, category, amount and description
// are considered duplicates of each other on import.
func (e Expense) ContentKey() string {
	return e.Date.String() + "|" + e.Category + "|" + e.Amount.String() + "|" + e.Description
}
