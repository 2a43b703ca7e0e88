// Package report computes summaries, statistics and budget checks over a
// ledger. All aggregation is done with exact decimals; results are plain
// values that commands format for display.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/ledgererror"
	"fjacquet/expense-tracker/internal/models"
)

// Summary aggregates one month of spending.
type Summary struct {
	Month      string                     `json:"month"`
	Total      decimal.Decimal            `json:"total"`
	Count      int                        `json:"count"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
}

// Average holds the mean over a set of expenses. Count lets callers
// distinguish an empty set from one that averages to zero.
type Average struct {
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average"`
}

// CategoryTotal pairs a category with its spending total.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthTotal pairs a month key with its spending total.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// BudgetStatus describes spending against the budget of one month.
// When no budget is configured for the month, Configured is false and
// Limit, Remaining and OverBy are zero; Spent is always filled in.
type BudgetStatus struct {
	Month      string          `json:"month"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	OverBy     decimal.Decimal `json:"over_by"`
	Configured bool            `json:"configured"`
}

// MonthlySummary returns the total, count and per-category totals for
// one month.
func MonthlySummary(l *ledger.Ledger, month string) (Summary, error) {
	month = strings.TrimSpace(month)
	if _, err := dateutils.ParseMonthKey(month); err != nil {
		return Summary{}, &ledgererror.ValidationError{Field: "month", Value: month, Reason: err.Error()}
	}

	summary := Summary{
		Month:      month,
		Total:      decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
	}
	for _, e := range l.Expenses {
		if e.MonthKey() != month {
			continue
		}
		summary.Total = summary.Total.Add(e.Amount)
		summary.ByCategory[e.Category] = summary.ByCategory[e.Category].Add(e.Amount)
		summary.Count++
	}
	return summary, nil
}

// AverageExpense returns the mean amount of the expenses matching the
// filter. An empty result is not an error: the average is defined as
// zero when nothing matches.
func AverageExpense(l *ledger.Ledger, filter models.Filter) Average {
	total := decimal.Zero
	count := 0
	for _, e := range l.Expenses {
		if !filter.Matches(e) {
			continue
		}
		total = total.Add(e.Amount)
		count++
	}

	average := decimal.Zero
	if count > 0 {
		average = total.Div(decimal.NewFromInt(int64(count)))
	}
	return Average{Total: total, Count: count, Average: average}
}

// TopCategories ranks categories by spending total, highest first, with
// ties broken by category name so the order is deterministic. An empty
// month means all time; n <= 0 returns all categories.
func TopCategories(l *ledger.Ledger, month string, n int) ([]CategoryTotal, error) {
	month = strings.TrimSpace(month)
	if month != "" {
		if _, err := dateutils.ParseMonthKey(month); err != nil {
			return nil, &ledgererror.ValidationError{Field: "month", Value: month, Reason: err.Error()}
		}
	}

	totals := make(map[string]decimal.Decimal)
	for _, e := range l.Expenses {
		if month != "" && e.MonthKey() != month {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	ranked := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		ranked = append(ranked, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Total.Equal(ranked[j].Total) {
			return ranked[i].Total.GreaterThan(ranked[j].Total)
		}
		return ranked[i].Category < ranked[j].Category
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// CheckBudget compares one month's spending against its configured
// budget. OverBy is zero unless spending strictly exceeds the limit.
func CheckBudget(l *ledger.Ledger, month string) (BudgetStatus, error) {
	month = strings.TrimSpace(month)
	if _, err := dateutils.ParseMonthKey(month); err != nil {
		return BudgetStatus{}, &ledgererror.ValidationError{Field: "month", Value: month, Reason: err.Error()}
	}

	status := BudgetStatus{
		Month:     month,
		Limit:     decimal.Zero,
		Spent:     decimal.Zero,
		Remaining: decimal.Zero,
		OverBy:    decimal.Zero,
	}
	for _, e := range l.Expenses {
		if e.MonthKey() == month {
			status.Spent = status.Spent.Add(e.Amount)
		}
	}

	limit, ok := l.Budget(month)
	if !ok {
		return status, nil
	}
	status.Configured = true
	status.Limit = limit
	status.Remaining = limit.Sub(status.Spent)
	if status.Spent.GreaterThan(limit) {
		status.OverBy = status.Spent.Sub(limit)
	}
	return status, nil
}

// Overview returns the total spent per month across the whole ledger,
// newest month first.
func Overview(l *ledger.Ledger) []MonthTotal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range l.Expenses {
		key := e.MonthKey()
		totals[key] = totals[key].Add(e.Amount)
	}

	months := make([]MonthTotal, 0, len(totals))
	for month, total := range totals {
		months = append(months, MonthTotal{Month: month, Total: total})
	}
	// Month keys are YYYY-MM, so reverse lexicographic order is
	// reverse chronological order.
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month > months[j].Month
	})
	return months
}
