// Package ledger holds the in-memory expense ledger and the operations
// that mutate it. It knows nothing about files; persistence is the
// store package's job.
package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/expense-tracker/internal/ledgererror"
	"fjacquet/expense-tracker/internal/models"
)

// Ledger is the full application state: every expense in insertion
// order, the monthly budget limits and the category registry. It
// serializes directly to the data file.
type Ledger struct {
	Expenses   []models.Expense           `json:"expenses"`
	Budgets    map[string]decimal.Decimal `json:"budgets"`
	Categories []string                   `json:"categories"`

	caseSensitiveCategories bool
}

// New returns an empty ledger with all containers initialized so that
// serialization produces [] and {} rather than null.
func New() *Ledger {
	return &Ledger{
		Expenses:   []models.Expense{},
		Budgets:    map[string]decimal.Decimal{},
		Categories: []string{},
	}
}

// Normalize backfills containers a partially unmarshalled ledger may be
// missing and registers the category of every expense. Data files
// written by older versions carry no categories key, so the registry is
// rebuilt from the expenses themselves.
func (l *Ledger) Normalize() {
	if l.Expenses == nil {
		l.Expenses = []models.Expense{}
	}
	if l.Budgets == nil {
		l.Budgets = map[string]decimal.Decimal{}
	}
	if l.Categories == nil {
		l.Categories = []string{}
	}
	for _, e := range l.Expenses {
		l.RegisterCategory(e.Category)
	}
}

// SetCaseSensitiveCategories controls whether category names are
// matched exactly or case-insensitively. The default is insensitive.
func (l *Ledger) SetCaseSensitiveCategories(sensitive bool) {
	l.caseSensitiveCategories = sensitive
}

// Count returns the number of expenses in the ledger.
func (l *Ledger) Count() int {
	return len(l.Expenses)
}

// List returns a copy of all expenses in insertion order.
func (l *Ledger) List() []models.Expense {
	out := make([]models.Expense, len(l.Expenses))
	copy(out, l.Expenses)
	return out
}

// Find returns the expenses matching the filter, newest first.
// Expenses on the same day keep their insertion order.
func (l *Ledger) Find(filter models.Filter) []models.Expense {
	results := []models.Expense{}
	for _, e := range l.Expenses {
		if filter.Matches(e) {
			results = append(results, e)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Date.After(results[j].Date.Time)
	})
	return results
}

// Get resolves an id or unique id prefix to the expense it names.
func (l *Ledger) Get(idOrPrefix string) (models.Expense, error) {
	idx, err := l.indexOf(idOrPrefix)
	if err != nil {
		return models.Expense{}, err
	}
	return l.Expenses[idx], nil
}

// indexOf resolves an id or id prefix to a position in the expense
// slice. An exact match always wins; otherwise the prefix must match
// exactly one expense.
func (l *Ledger) indexOf(idOrPrefix string) (int, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return 0, &ledgererror.ValidationError{Field: "id", Value: "", Reason: "id is required"}
	}

	for i, e := range l.Expenses {
		if e.ID == idOrPrefix {
			return i, nil
		}
	}

	matches := []int{}
	for i, e := range l.Expenses {
		if strings.HasPrefix(e.ID, idOrPrefix) {
			matches = append(matches, i)
		}
	}
	switch len(matches) {
	case 0:
		return 0, &ledgererror.NotFoundError{ID: idOrPrefix}
	case 1:
		return matches[0], nil
	default:
		return 0, &ledgererror.ValidationError{
			Field:  "id",
			Value:  idOrPrefix,
			Reason: fmt.Sprintf("prefix matches %d expenses, use more characters", len(matches)),
		}
	}
}
