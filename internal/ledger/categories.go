package ledger

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/ledgererror"
	"fjacquet/expense-tracker/internal/models"
)

// RegisterCategory adds a category name to the registry if it is not
// already present. It reports whether the registry changed.
func (l *Ledger) RegisterCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, c := range l.Categories {
		if l.sameCategory(c, name) {
			return false
		}
	}
	l.Categories = append(l.Categories, name)
	return true
}

// CanonicalCategory maps a name onto the registered spelling of the
// category, so "food" and "Food" land in the same bucket. Unregistered
// names pass through unchanged.
func (l *Ledger) CanonicalCategory(name string) string {
	for _, c := range l.Categories {
		if l.sameCategory(c, name) {
			return c
		}
	}
	return name
}

// RemoveCategory removes a category from the registry. The mode decides
// what happens to expenses still using it: fail refuses, delete removes
// them, reassign moves them to another category. It returns the number
// of expenses affected.
func (l *Ledger) RemoveCategory(name string, mode models.CategoryRemovalMode, reassignTo string) (int, error) {
	name = strings.TrimSpace(name)
	canonical := l.CanonicalCategory(name)
	if !l.categoryRegistered(canonical) {
		return 0, &ledgererror.ValidationError{
			Field: "category", Value: name, Reason: "category is not registered",
		}
	}

	inUse := 0
	for _, e := range l.Expenses {
		if l.sameCategory(e.Category, canonical) {
			inUse++
		}
	}

	switch mode {
	case models.CategoryRemovalFail, "":
		if inUse > 0 {
			return 0, &ledgererror.ValidationError{
				Field:  "category",
				Value:  name,
				Reason: fmt.Sprintf("%d expenses still use this category", inUse),
			}
		}
		l.unregisterCategory(canonical)
		return 0, nil

	case models.CategoryRemovalDelete:
		kept := l.Expenses[:0]
		for _, e := range l.Expenses {
			if !l.sameCategory(e.Category, canonical) {
				kept = append(kept, e)
			}
		}
		l.Expenses = kept
		l.unregisterCategory(canonical)
		return inUse, nil

	case models.CategoryRemovalReassign:
		target := l.CanonicalCategory(strings.TrimSpace(reassignTo))
		if target == "" {
			return 0, &ledgererror.ValidationError{
				Field: "reassign-to", Value: "", Reason: "a target category is required",
			}
		}
		if l.sameCategory(target, canonical) {
			return 0, &ledgererror.ValidationError{
				Field: "reassign-to", Value: reassignTo, Reason: "target equals the removed category",
			}
		}
		now := time.Now().UTC()
		for i := range l.Expenses {
			if l.sameCategory(l.Expenses[i].Category, canonical) {
				l.Expenses[i].Category = target
				l.Expenses[i].UpdatedAt = now
			}
		}
		l.unregisterCategory(canonical)
		l.RegisterCategory(target)
		return inUse, nil

	default:
		return 0, &ledgererror.ValidationError{
			Field: "mode", Value: string(mode), Reason: "must be fail, delete or reassign",
		}
	}
}

func (l *Ledger) categoryRegistered(name string) bool {
	for _, c := range l.Categories {
		if l.sameCategory(c, name) {
			return true
		}
	}
	return false
}

func (l *Ledger) unregisterCategory(name string) {
	for i, c := range l.Categories {
		if l.sameCategory(c, name) {
			l.Categories = append(l.Categories[:i], l.Categories[i+1:]...)
			return
		}
	}
}

func (l *Ledger) sameCategory(a, b string) bool {
	if l.caseSensitiveCategories {
		return a == b
	}
	return strings.EqualFold(a, b)
}
