package ledger

import (
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/amountutils"
	"fjacquet/expense-tracker/internal/ledgererror"
	"fjacquet/expense-tracker/internal/models"
)

// ExpenseInput carries the raw field values for a new expense, exactly
// as they arrived from the command line or a CSV row.
type ExpenseInput struct {
	Date        string
	Category    string
	Amount      string
	Description string
}

// ExpenseChanges carries the fields an edit wants to change. Nil
// pointers leave the corresponding field untouched, which lets a
// command distinguish "not given" from "set to empty".
type ExpenseChanges struct {
	Date        *string
	Category    *string
	Amount      *string
	Description *string
}

// IsEmpty reports whether the change set would modify anything.
func (c ExpenseChanges) IsEmpty() bool {
	return c.Date == nil && c.Category == nil && c.Amount == nil && c.Description == nil
}

// Add validates the input, builds a new expense with a fresh id and
// appends it. The ledger is left untouched when validation fails.
func (l *Ledger) Add(input ExpenseInput) (models.Expense, error) {
	expense, err := models.NewExpenseBuilder().
		WithDate(strings.TrimSpace(input.Date)).
		WithCategory(l.CanonicalCategory(strings.TrimSpace(input.Category))).
		WithAmountFromString(input.Amount).
		WithDescription(strings.TrimSpace(input.Description)).
		Build()
	if err != nil {
		return models.Expense{}, err
	}

	l.Expenses = append(l.Expenses, expense)
	l.RegisterCategory(expense.Category)
	return expense, nil
}

// Edit applies the given changes to the expense named by id or unique
// id prefix. Validation runs against the fully updated record, so a
// failed edit leaves the expense as it was.
func (l *Ledger) Edit(idOrPrefix string, changes ExpenseChanges) (models.Expense, error) {
	idx, err := l.indexOf(idOrPrefix)
	if err != nil {
		return models.Expense{}, err
	}

	updated := l.Expenses[idx]
	if changes.Date != nil {
		date, err := models.ParseDate(strings.TrimSpace(*changes.Date))
		if err != nil {
			return models.Expense{}, &ledgererror.ValidationError{
				Field: "date", Value: *changes.Date, Reason: err.Error(),
			}
		}
		updated.Date = date
	}
	if changes.Category != nil {
		updated.Category = l.CanonicalCategory(strings.TrimSpace(*changes.Category))
	}
	if changes.Amount != nil {
		amount, err := amountutils.ParseAmount(*changes.Amount)
		if err != nil {
			return models.Expense{}, &ledgererror.ValidationError{
				Field: "amount", Value: *changes.Amount, Reason: err.Error(),
			}
		}
		updated.Amount = amount
	}
	if changes.Description != nil {
		updated.Description = strings.TrimSpace(*changes.Description)
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := updated.Validate(); err != nil {
		return models.Expense{}, err
	}

	l.Expenses[idx] = updated
	l.RegisterCategory(updated.Category)
	return updated, nil
}

// Delete removes the expense named by id or unique id prefix and
// returns it. The order of the remaining expenses is preserved.
func (l *Ledger) Delete(idOrPrefix string) (models.Expense, error) {
	idx, err := l.indexOf(idOrPrefix)
	if err != nil {
		return models.Expense{}, err
	}

	removed := l.Expenses[idx]
	l.Expenses = append(l.Expenses[:idx], l.Expenses[idx+1:]...)
	return removed, nil
}

// Merge appends imported expenses, skipping any whose content (date,
// category, amount, description) already exists in the ledger. Incoming
// categories are mapped onto their registered spelling before the
// duplicate check. It returns how many expenses were added and how many
// were skipped as duplicates.
func (l *Ledger) Merge(expenses []models.Expense) (added, duplicates int) {
	seen := make(map[string]bool, len(l.Expenses))
	for _, e := range l.Expenses {
		seen[e.ContentKey()] = true
	}

	for _, e := range expenses {
		e.Category = l.CanonicalCategory(e.Category)
		key := e.ContentKey()
		if seen[key] {
			duplicates++
			continue
		}
		seen[key] = true
		l.Expenses = append(l.Expenses, e)
		l.RegisterCategory(e.Category)
		added++
	}
	return added, duplicates
}
