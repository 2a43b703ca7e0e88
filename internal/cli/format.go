// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"fjacquet/expense-tracker/internal/amountutils"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/report"
)

// categoryWidth caps the category column so long names do not push the
// amount column off screen.
const categoryWidth = 12

// ExpenseHeaders is the column order used by expense listings.
var ExpenseHeaders = []string{"ID", "Date", "Category", "Amount", "Description"}

// expenseNumeric marks the amount column for right alignment.
var expenseNumeric = []bool{false, false, false, true, false}

// FormatShortID returns the display form of an expense id, the first
// eight characters. Short ids are accepted back as prefixes by the
// commands that look expenses up.
func FormatShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Truncate shortens s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// FormatPercent formats part as a percentage of whole with one decimal,
// e.g. "83.3%". It returns an empty string when whole is not positive.
func FormatPercent(part, whole decimal.Decimal) string {
	if !whole.IsPositive() {
		return ""
	}
	pct := part.Div(whole).Mul(decimal.NewFromInt(100))
	return pct.StringFixed(1) + "%"
}

// ExpenseRow converts an expense to a table row.
func ExpenseRow(e models.Expense) []string {
	return []string{
		FormatShortID(e.ID),
		e.Date.String(),
		Truncate(e.Category, categoryWidth),
		amountutils.FormatAmountGrouped(e.Amount),
		e.Description,
	}
}

// ExpenseRows converts expenses to table rows in the given order.
func ExpenseRows(expenses []models.Expense) [][]string {
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, ExpenseRow(e))
	}
	return rows
}

// ExpenseTable builds a renderable table of expenses.
func ExpenseTable(title string, expenses []models.Expense) Table {
	return Table{
		Title:   title,
		Headers: ExpenseHeaders,
		Rows:    ExpenseRows(expenses),
		Numeric: expenseNumeric,
	}
}

// SummaryTable builds the monthly summary table, one row per category
// sorted by spend, a separator, then the month total.
func SummaryTable(s report.Summary) Table {
	categories := make([]string, 0, len(s.ByCategory))
	for category := range s.ByCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := s.ByCategory[categories[i]], s.ByCategory[categories[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return categories[i] < categories[j]
	})

	rows := make([][]string, 0, len(categories)+2)
	for _, category := range categories {
		rows = append(rows, []string{category, amountutils.FormatAmountGrouped(s.ByCategory[category])})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", amountutils.FormatAmountGrouped(s.Total)})

	return Table{
		Title:   "Summary " + s.Month,
		Headers: []string{"Category", "Amount"},
		Rows:    rows,
	}
}

// OverviewTable builds the spending-by-month table, newest month first.
func OverviewTable(months []report.MonthTotal) Table {
	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{m.Month, amountutils.FormatAmountGrouped(m.Total)})
	}
	return Table{
		Title:   "Spending by Month",
		Headers: []string{"Month", "Total"},
		Rows:    rows,
	}
}

// TopCategoriesTable builds the top-categories table with a bar chart
// column scaled to the largest total.
func TopCategoriesTable(categories []report.CategoryTotal, barWidth int) Table {
	var max decimal.Decimal
	for _, c := range categories {
		if c.Total.GreaterThan(max) {
			max = c.Total
		}
	}

	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{
			c.Category,
			amountutils.FormatAmountGrouped(c.Total),
			RenderCategoryBar(c.Total, max, barWidth),
		})
	}

	return Table{
		Title:   "Top Categories",
		Headers: []string{"Category", "Total", ""},
		Rows:    rows,
		Numeric: []bool{false, true, false},
	}
}

// StatsRows builds the label/value rows of the statistics display.
func StatsRows(avg report.Average) [][]string {
	return [][]string{
		{"Count", strconv.Itoa(avg.Count)},
		{"Total", amountutils.FormatAmountGrouped(avg.Total)},
		{"Average", amountutils.FormatAmountGrouped(avg.Average)},
	}
}

// BudgetRows builds the label/value rows of the budget status display.
// Remaining is shown only when a budget is configured, mirroring the
// Budget line which reads "Not set" otherwise.
func BudgetRows(status report.BudgetStatus) [][]string {
	rows := [][]string{
		{"Month", status.Month},
		{"Spent", amountutils.FormatAmountGrouped(status.Spent)},
	}
	if !status.Configured {
		return append(rows, []string{"Budget", "Not set"})
	}
	return append(rows,
		[]string{"Budget", amountutils.FormatAmountGrouped(status.Limit)},
		[]string{"Remaining", amountutils.FormatAmountGrouped(status.Remaining)},
	)
}

// BudgetAlert returns the alert line for an exceeded budget, or an
// empty string when spending is within the limit or no budget is set.
func BudgetAlert(status report.BudgetStatus) string {
	if !status.Configured || !status.OverBy.IsPositive() {
		return ""
	}
	return fmt.Sprintf("Alert: Budget exceeded by %s", amountutils.FormatAmountGrouped(status.OverBy))
}
