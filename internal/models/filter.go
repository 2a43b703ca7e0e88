package models

import (
	"strings"
)

// Filter selects expenses by category, date range and free text. Zero-value
// fields do not constrain the result.
type Filter struct {
	Category string
	From     Date
	To       Date
	Text     string

	// CaseSensitiveCategory controls category comparison; free-text search
	// is always case-insensitive.
	CaseSensitiveCategory bool
}

// IsEmpty reports whether the filter constrains anything at all
func (f Filter) IsEmpty() bool {
	return f.Category == "" && f.From.IsZero() && f.To.IsZero() && f.Text == ""
}

// Matches reports whether an expense satisfies every constraint of the filter
func (f Filter) Matches(e Expense) bool {
	if f.Category != "" {
		if f.CaseSensitiveCategory {
			if e.Category != f.Category {
				return false
			}
		} else if !strings.EqualFold(e.Category, f.Category) {
			return false
		}
	}

	if !f.From.IsZero() && e.Date.Before(f.From.Time) {
		return false
	}
	if !f.To.IsZero() && e.Date.After(f.To.Time) {
		return false
	}

	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		haystack := strings.ToLower(e.Description + " " + e.Category)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}

	return true
}
