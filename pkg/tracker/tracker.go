// Package tracker exposes the expense ledger as an embeddable Go API.
//
// It wraps the same storage, import and reporting machinery the command
// line uses, so data files written through this package stay fully
// compatible with the CLI and vice versa. Every mutating call runs one
// load-modify-save cycle against the data file, which keeps the single
// level of undo intact: Undo always reverts exactly the last mutating
// call.
package tracker

import (
	"time"

	"fjacquet/expense-tracker/internal/amountutils"
	"fjacquet/expense-tracker/internal/common"
	"fjacquet/expense-tracker/internal/csvparser"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/store"
)

// Expense is the public view of one recorded expense. Date carries the
// canonical YYYY-MM-DD form and Amount the exact decimal text.
type Expense struct {
	ID          string
	Date        string
	Category    string
	Amount      string
	Description string
}

// Summary aggregates one month of spending. Totals are exact decimal
// text, keyed by category in ByCategory.
type Summary struct {
	Month      string
	Total      string
	Count      int
	ByCategory map[string]string
}

// BudgetStatus describes spending against one month's budget. When no
// budget is configured for the month, Configured is false and only
// Spent is meaningful.
type BudgetStatus struct {
	Month      string
	Configured bool
	Limit      string
	Spent      string
	Remaining  string
	OverBy     string
}

// ImportStats reports the outcome of a CSV import. Rejected holds one
// "line N: reason" entry per row that failed validation.
type ImportStats struct {
	Imported   int
	Duplicates int
	Rejected   []string
}

// Tracker is a handle on one expense data file. It assumes a single
// writer; concurrent mutating calls on the same file can lose updates.
type Tracker struct {
	store *store.Store

	// DefaultCategory is assigned to expenses added without one.
	DefaultCategory string
	// ImportFallback is assigned to imported rows that carry no
	// category and match no categorization keyword.
	ImportFallback string
}

// Open returns a tracker backed by dataFile. The backup consumed by
// Undo lives next to the data file with a .bak extension. A missing
// data file reads as an empty ledger until the first mutating call
// creates it.
func Open(dataFile string) *Tracker {
	return OpenWithBackup(dataFile, dataFile+".bak")
}

// OpenWithBackup is Open with an explicit backup location.
func OpenWithBackup(dataFile, backupFile string) *Tracker {
	return &Tracker{
		store:           store.New(dataFile, backupFile),
		DefaultCategory: models.CategoryDefault,
		ImportFallback:  models.CategoryImported,
	}
}

// Add validates and records one expense, then saves. An empty date
// means today; an empty category takes DefaultCategory. Amount accepts
// the same notations as the CLI, so "$1,234.50" and "1'234.50" both
// parse.
func (t *Tracker) Add(date, category, amount, description string) (Expense, error) {
	l, err := t.store.Load()
	if err != nil {
		return Expense{}, err
	}
	if date == "" {
		date = dateutils.ToISODate(time.Now())
	}
	if category == "" {
		category = t.DefaultCategory
	}
	expense, err := l.Add(ledger.ExpenseInput{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		return Expense{}, err
	}
	if err := t.store.Save(l); err != nil {
		return Expense{}, err
	}
	return toExpense(expense), nil
}

// Delete removes the expense named by its id or a unique id prefix and
// returns the removed record.
func (t *Tracker) Delete(idOrPrefix string) (Expense, error) {
	l, err := t.store.Load()
	if err != nil {
		return Expense{}, err
	}
	expense, err := l.Delete(idOrPrefix)
	if err != nil {
		return Expense{}, err
	}
	if err := t.store.Save(l); err != nil {
		return Expense{}, err
	}
	return toExpense(expense), nil
}

// List returns every expense, newest first.
func (t *Tracker) List() ([]Expense, error) {
	l, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	expenses := l.Find(models.Filter{})
	out := make([]Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toExpense(e)
	}
	return out, nil
}

// Undo reverts the last mutating call and reports how many expenses
// remain afterwards. It fails when nothing has been saved since the
// last undo.
func (t *Tracker) Undo() (int, error) {
	l, err := t.store.Undo()
	if err != nil {
		return 0, err
	}
	return l.Count(), nil
}

// SetBudget stores a monthly spending limit under a YYYY-MM key. The
// limit uses the same notation as amounts.
func (t *Tracker) SetBudget(month, limit string) error {
	l, err := t.store.Load()
	if err != nil {
		return err
	}
	amount, err := amountutils.ParseAmount(limit)
	if err != nil {
		return err
	}
	if err := l.SetBudget(month, amount); err != nil {
		return err
	}
	return t.store.Save(l)
}

// MonthlySummary totals one month of spending. A month with no
// expenses comes back with Count zero rather than an error.
func (t *Tracker) MonthlySummary(month string) (Summary, error) {
	l, err := t.store.Load()
	if err != nil {
		return Summary{}, err
	}
	s, err := report.MonthlySummary(l, month)
	if err != nil {
		return Summary{}, err
	}
	byCategory := make(map[string]string, len(s.ByCategory))
	for category, total := range s.ByCategory {
		byCategory[category] = total.String()
	}
	return Summary{
		Month:      s.Month,
		Total:      s.Total.String(),
		Count:      s.Count,
		ByCategory: byCategory,
	}, nil
}

// BudgetStatus compares one month's spending against its budget.
func (t *Tracker) BudgetStatus(month string) (BudgetStatus, error) {
	l, err := t.store.Load()
	if err != nil {
		return BudgetStatus{}, err
	}
	status, err := report.CheckBudget(l, month)
	if err != nil {
		return BudgetStatus{}, err
	}
	return BudgetStatus{
		Month:      status.Month,
		Configured: status.Configured,
		Limit:      status.Limit.String(),
		Spent:      status.Spent.String(),
		Remaining:  status.Remaining.String(),
		OverBy:     status.OverBy.String(),
	}, nil
}

// ImportCSV merges the expenses of a CSV file into the ledger. Rows
// that fail validation are reported in the result instead of imported;
// rows identical in content to an existing expense are skipped as
// duplicates. Nothing is saved when the file contributes no new
// expenses.
func (t *Tracker) ImportCSV(path string) (ImportStats, error) {
	l, err := t.store.Load()
	if err != nil {
		return ImportStats{}, err
	}
	result, err := csvparser.ParseFile(path, nil, t.ImportFallback)
	if err != nil {
		return ImportStats{}, err
	}
	added, duplicates := l.Merge(result.Expenses)
	if added > 0 {
		if err := t.store.Save(l); err != nil {
			return ImportStats{}, err
		}
	}
	stats := ImportStats{Imported: added, Duplicates: duplicates}
	for _, row := range result.Rejected {
		stats.Rejected = append(stats.Rejected, row.String())
	}
	return stats, nil
}

// ExportCSV writes every expense to a CSV file in insertion order and
// reports how many rows it wrote. An empty ledger produces a
// header-only file.
func (t *Tracker) ExportCSV(path string) (int, error) {
	l, err := t.store.Load()
	if err != nil {
		return 0, err
	}
	expenses := l.List()
	if err := common.ExportExpensesToCSV(expenses, path); err != nil {
		return 0, err
	}
	return len(expenses), nil
}

func toExpense(e models.Expense) Expense {
	return Expense{
		ID:          e.ID,
		Date:        dateutils.ToISODate(e.Date.Time),
		Category:    e.Category,
		Amount:      e.Amount.String(),
		Description: e.Description,
	}
}
