package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func filterFixture() Expense {
	return Expense{
		ID:          "id-1",
		Date:        NewDate(2024, time.January, 15),
		Category:    "Food",
		Amount:      decimal.RequireFromString("12.50"),
		Description: "Lunch at the corner place",
	}
}

func TestFilter_IsEmpty(t *testing.T) {
	assert.True(t, Filter{}.IsEmpty())
	assert.False(t, Filter{Category: "Food"}.IsEmpty())
	assert.False(t, Filter{Text: "lunch"}.IsEmpty())
	assert.False(t, Filter{From: NewDate(2024, time.January, 1)}.IsEmpty())
}

func TestFilter_Matches(t *testing.T) {
	expense := filterFixture()

	tests := []struct {
		name     string
		filter   Filter
		expected bool
	}{
		{"empty filter matches all", Filter{}, true},
		{"category exact", Filter{Category: "Food"}, true},
		{"category case-insensitive by default", Filter{Category: "food"}, true},
		{"category case-sensitive mismatch", Filter{Category: "food", CaseSensitiveCategory: true}, false},
		{"category mismatch", Filter{Category: "Transport"}, false},
		{"from bound inclusive", Filter{From: NewDate(2024, time.January, 15)}, true},
		{"from bound excludes earlier", Filter{From: NewDate(2024, time.January, 16)}, false},
		{"to bound inclusive", Filter{To: NewDate(2024, time.January, 15)}, true},
		{"to bound excludes later", Filter{To: NewDate(2024, time.January, 14)}, false},
		{
			"range around the date",
			Filter{From: NewDate(2024, time.January, 1), To: NewDate(2024, time.January, 31)},
			true,
		},
		{"text on description", Filter{Text: "corner"}, true},
		{"text is case-insensitive", Filter{Text: "LUNCH"}, true},
		{"text on category", Filter{Text: "foo"}, true},
		{"text mismatch", Filter{Text: "taxi"}, false},
		{
			"all constraints together",
			Filter{
				Category: "Food",
				From:     NewDate(2024, time.January, 1),
				To:       NewDate(2024, time.January, 31),
				Text:     "lunch",
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Matches(expense))
		})
	}
}
