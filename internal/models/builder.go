package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fjacquet/expense-tracker/internal/amountutils"
	"fjacquet/expense-tracker/internal/ledgererror"
)

// ExpenseBuilder provides a fluent API for constructing expenses.
// The first error encountered is carried through and returned by Build.
type ExpenseBuilder struct {
	expense Expense
	err     error
}

// NewExpenseBuilder creates a new ExpenseBuilder with zero values
func NewExpenseBuilder() *ExpenseBuilder {
	return &ExpenseBuilder{
		expense: Expense{
			Amount: decimal.Zero,
		},
	}
}

// WithID sets the expense ID. When no ID is set, Build generates one.
func (b *ExpenseBuilder) WithID(id string) *ExpenseBuilder {
	if b.err != nil {
		return b
	}
	b.expense.ID = id
	return b
}

// WithDate sets the expense date from a string in any accepted format
func (b *ExpenseBuilder) WithDate(dateStr string) *ExpenseBuilder {
	if b.err != nil {
		return b
	}
	date, err := ParseDate(dateStr)
	if err != nil {
		b.err = &ledgererror.ValidationError{Field: "date", Value: dateStr, Reason: err.Error()}
		return b
	}
	b.expense.Date = date
	return b
}

// WithDateFromTime sets the expense date from a time.Time
func (b *ExpenseBuilder) WithDateFromTime(t time.Time) *ExpenseBuilder {
	if b.err != nil {
		return b
	}
	if t.IsZero() {
		b.err = &ledgererror.ValidationError{Field: "date", Value: "", Reason: "date cannot be zero"}
		return b
	}
	b.expense.Date = DateFromTime(t)
	return b
}

// WithCategory sets the expense category
func (b *ExpenseBuilder) WithCategory(category string) *ExpenseBuilder {
	if b.err != nil {
		return b
	}
	b.expense.Category = category
	return b
}

// WithAmount sets the expense amount from a decimal value
func (b *ExpenseBuilder) WithAmount(amount decimal.Decimal) *ExpenseBuilder {
	if b.err != nil {
		return b
	}
	b.expense.Amount = amount
	return b
}

// WithAmountFromString sets the expense amount from a string, accepting
// the usual currency symbols and separators
func (b *ExpenseBuilder) WithAmountFromString(amountStr string) *ExpenseBuilder {
	if b.err != nil {
		return b
	}
	amount, err := amountutils.ParseAmount(amountStr)
	if err != nil {
		b.err = &ledgererror.ValidationError{Field: "amount", Value: amountStr, Reason: err.Error()}
		return b
	}
	b.expense.Amount = amount
	return b
}

// WithDescription sets the free-text description
func (b *ExpenseBuilder) WithDescription(description string) *ExpenseBuilder {
	if b.err != nil {
		return b
	}
	b.expense.Description = description
	return b
}

// WithTimestamps sets the creation and update times explicitly
func (b *ExpenseBuilder) WithTimestamps(createdAt, updatedAt time.Time) *ExpenseBuilder {
	if b.err != nil {
		return b
	}
	b.expense.CreatedAt = createdAt
	b.expense.UpdatedAt = updatedAt
	return b
}

// Build finalizes the expense. A missing ID is generated, missing
// timestamps are set to now, and the result is validated.
func (b *ExpenseBuilder) Build() (Expense, error) {
	if b.err != nil {
		return Expense{}, b.err
	}

	if b.expense.ID == "" {
		b.expense.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if b.expense.CreatedAt.IsZero() {
		b.expense.CreatedAt = now
	}
	if b.expense.UpdatedAt.IsZero() {
		b.expense.UpdatedAt = now
	}

	if err := b.expense.Validate(); err != nil {
		return Expense{}, err
	}

	return b.expense, nil
}
