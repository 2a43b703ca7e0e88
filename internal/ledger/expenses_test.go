package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/expense-tracker/internal/ledgererror"
	"fjacquet/expense-tracker/internal/models"
)

func TestLedger_Add(t *testing.T) {
	tests := []struct {
		name          string
		input         ExpenseInput
		wantErr       bool
		expectedField string
	}{
		{
			name: "valid expense",
			input: ExpenseInput{
				Date:        "2024-01-15",
				Category:    "Food",
				Amount:      "12.50",
				Description: "lunch",
			},
		},
		{
			name: "amount with currency symbol",
			input: ExpenseInput{
				Date:     "2024-01-15",
				Category: "Food",
				Amount:   "$12.50",
			},
		},
		{
			name: "bad date",
			input: ExpenseInput{
				Date:     "someday",
				Category: "Food",
				Amount:   "12.50",
			},
			wantErr:       true,
			expectedField: "date",
		},
		{
			name: "bad amount",
			input: ExpenseInput{
				Date:     "2024-01-15",
				Category: "Food",
				Amount:   "abc",
			},
			wantErr:       true,
			expectedField: "amount",
		},
		{
			name: "zero amount",
			input: ExpenseInput{
				Date:     "2024-01-15",
				Category: "Food",
				Amount:   "0",
			},
			wantErr:       true,
			expectedField: "amount",
		},
		{
			name: "negative amount",
			input: ExpenseInput{
				Date:     "2024-01-15",
				Category: "Food",
				Amount:   "-5",
			},
			wantErr:       true,
			expectedField: "amount",
		},
		{
			name: "missing category",
			input: ExpenseInput{
				Date:   "2024-01-15",
				Amount: "12.50",
			},
			wantErr:       true,
			expectedField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()

			expense, err := l.Add(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				var validationErr *ledgererror.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.expectedField, validationErr.Field)
				// A failed add must leave the ledger untouched.
				assert.Equal(t, 0, l.Count())
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, expense.ID)
			assert.Equal(t, "2024-01-15", expense.Date.String())
			assert.True(t, decimal.RequireFromString("12.5").Equal(expense.Amount))
			assert.False(t, expense.CreatedAt.IsZero())
			assert.Equal(t, 1, l.Count())
			assert.Contains(t, l.Categories, "Food")
		})
	}
}

func TestLedger_Add_CanonicalizesCategory(t *testing.T) {
	l := New()
	l.RegisterCategory("Food")

	expense, err := l.Add(ExpenseInput{Date: "2024-01-15", Category: "food", Amount: "5"})

	require.NoError(t, err)
	assert.Equal(t, "Food", expense.Category)
	assert.Equal(t, []string{"Food"}, l.Categories)
}

func TestLedger_Add_CaseSensitiveCategories(t *testing.T) {
	l := New()
	l.SetCaseSensitiveCategories(true)
	l.RegisterCategory("Food")

	expense, err := l.Add(ExpenseInput{Date: "2024-01-15", Category: "food", Amount: "5"})

	require.NoError(t, err)
	assert.Equal(t, "food", expense.Category)
	assert.ElementsMatch(t, []string{"Food", "food"}, l.Categories)
}

func TestLedger_Edit(t *testing.T) {
	newAmount := "25.00"
	newCategory := "Transport"
	newDate := "2024-02-01"
	newDescription := "updated"
	badAmount := "abc"
	badDate := "someday"

	tests := []struct {
		name    string
		changes ExpenseChanges
		verify  func(t *testing.T, e models.Expense)
		wantErr bool
	}{
		{
			name:    "change amount only",
			changes: ExpenseChanges{Amount: &newAmount},
			verify: func(t *testing.T, e models.Expense) {
				assert.True(t, decimal.RequireFromString("25").Equal(e.Amount))
				assert.Equal(t, "Food", e.Category)
				assert.Equal(t, "2024-01-15", e.Date.String())
			},
		},
		{
			name: "change several fields",
			changes: ExpenseChanges{
				Date:        &newDate,
				Category:    &newCategory,
				Description: &newDescription,
			},
			verify: func(t *testing.T, e models.Expense) {
				assert.Equal(t, "2024-02-01", e.Date.String())
				assert.Equal(t, "Transport", e.Category)
				assert.Equal(t, "updated", e.Description)
			},
		},
		{
			name:    "bad amount rejected",
			changes: ExpenseChanges{Amount: &badAmount},
			wantErr: true,
		},
		{
			name:    "bad date rejected",
			changes: ExpenseChanges{Date: &badDate},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			seed(l, testExpense(t, "e1", "2024-01-15", "Food", "12.50", "lunch"))
			before := l.Expenses[0]

			updated, err := l.Edit("e1", tt.changes)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ledgererror.IsValidation(err))
				// A failed edit must leave the expense as it was.
				assert.Equal(t, before, l.Expenses[0])
				return
			}

			require.NoError(t, err)
			tt.verify(t, updated)
			assert.Equal(t, updated, l.Expenses[0])
			assert.False(t, updated.UpdatedAt.Before(before.UpdatedAt))
		})
	}
}

func TestLedger_Edit_UnknownID(t *testing.T) {
	l := New()
	amount := "5"

	_, err := l.Edit("missing", ExpenseChanges{Amount: &amount})

	require.Error(t, err)
	assert.True(t, ledgererror.IsNotFound(err))
}

func TestLedger_Edit_RegistersNewCategory(t *testing.T) {
	l := New()
	seed(l, testExpense(t, "e1", "2024-01-15", "Food", "12.50", ""))
	category := "Health"

	_, err := l.Edit("e1", ExpenseChanges{Category: &category})

	require.NoError(t, err)
	assert.Contains(t, l.Categories, "Health")
}

func TestExpenseChanges_IsEmpty(t *testing.T) {
	amount := "5"

	assert.True(t, ExpenseChanges{}.IsEmpty())
	assert.False(t, ExpenseChanges{Amount: &amount}.IsEmpty())
}

func TestLedger_Delete(t *testing.T) {
	l := New()
	seed(l,
		testExpense(t, "e1", "2024-01-10", "Food", "10", ""),
		testExpense(t, "e2", "2024-01-11", "Food", "20", ""),
		testExpense(t, "e3", "2024-01-12", "Food", "30", ""),
	)

	removed, err := l.Delete("e2")

	require.NoError(t, err)
	assert.Equal(t, "e2", removed.ID)
	require.Equal(t, 2, l.Count())
	// Remaining expenses keep their order.
	assert.Equal(t, "e1", l.Expenses[0].ID)
	assert.Equal(t, "e3", l.Expenses[1].ID)
}

func TestLedger_Delete_UnknownID(t *testing.T) {
	l := New()

	_, err := l.Delete("nope")

	require.Error(t, err)
	assert.True(t, ledgererror.IsNotFound(err))
}

func TestLedger_Merge(t *testing.T) {
	l := New()
	seed(l, testExpense(t, "e1", "2024-01-10", "Food", "10", "groceries"))

	incoming := []models.Expense{
		// Same content as e1 under a fresh id: a duplicate.
		testExpense(t, "i1", "2024-01-10", "Food", "10", "groceries"),
		testExpense(t, "i2", "2024-01-11", "Transport", "3", "bus"),
		testExpense(t, "i3", "2024-01-12", "Food", "20", "dinner"),
		// Duplicate within the same batch.
		testExpense(t, "i4", "2024-01-11", "Transport", "3", "bus"),
	}

	added, duplicates := l.Merge(incoming)

	assert.Equal(t, 2, added)
	assert.Equal(t, 2, duplicates)
	assert.Equal(t, 3, l.Count())
	assert.Contains(t, l.Categories, "Transport")
}

func TestLedger_Merge_CanonicalizesCategories(t *testing.T) {
	l := New()
	l.RegisterCategory("Food")

	added, duplicates := l.Merge([]models.Expense{
		testExpense(t, "i1", "2024-01-10", "food", "10", "groceries"),
		// Same content once the category is canonicalized.
		testExpense(t, "i2", "2024-01-10", "FOOD", "10", "groceries"),
	})

	assert.Equal(t, 1, added)
	assert.Equal(t, 1, duplicates)
	assert.Equal(t, "Food", l.Expenses[0].Category)
	assert.Equal(t, []string{"Food"}, l.Categories)
}

func TestLedger_Merge_Timestamp(t *testing.T) {
	// Merge must keep the ids and timestamps the rows arrived with.
	l := New()
	e := testExpense(t, "i1", "2024-01-10", "Food", "10", "")
	e.CreatedAt = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	added, _ := l.Merge([]models.Expense{e})

	require.Equal(t, 1, added)
	assert.Equal(t, "i1", l.Expenses[0].ID)
	assert.Equal(t, e.CreatedAt, l.Expenses[0].CreatedAt)
}
