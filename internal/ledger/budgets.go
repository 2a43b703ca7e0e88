package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/ledgererror"
)

// SetBudget stores a monthly spending limit under a YYYY-MM key.
// Setting a month again overwrites the previous limit.
func (l *Ledger) SetBudget(month string, limit decimal.Decimal) error {
	month = strings.TrimSpace(month)
	if _, err := dateutils.ParseMonthKey(month); err != nil {
		return &ledgererror.ValidationError{Field: "month", Value: month, Reason: err.Error()}
	}
	if !limit.IsPositive() {
		return &ledgererror.ValidationError{
			Field: "limit", Value: limit.String(), Reason: "must be greater than zero",
		}
	}
	if l.Budgets == nil {
		l.Budgets = map[string]decimal.Decimal{}
	}
	l.Budgets[month] = limit
	return nil
}

// Budget returns the limit configured for a month and whether one is set.
func (l *Ledger) Budget(month string) (decimal.Decimal, bool) {
	limit, ok := l.Budgets[strings.TrimSpace(month)]
	return limit, ok
}
