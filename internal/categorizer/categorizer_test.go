package categorizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/store"
)

func testRules() []models.CategoryConfig {
	return []models.CategoryConfig{
		{Name: "Groceries", Keywords: []string{"migros", "coop", "supermarket"}},
		{Name: "Transport", Keywords: []string{"sbb", "bus", "train"}},
		{Name: "Dining", Keywords: []string{"restaurant", "pizzeria"}},
	}
}

func TestNewCategorizer(t *testing.T) {
	mockStore := &store.MockCategoryStore{Categories: testRules()}

	c := NewCategorizer(mockStore, logging.NewMockLogger())

	assert.Len(t, c.Categories(), 3)
}

func TestNewCategorizer_LoadError(t *testing.T) {
	mockStore := &store.MockCategoryStore{LoadCategoriesError: errors.New("disk on fire")}
	mockLogger := logging.NewMockLogger()

	c := NewCategorizer(mockStore, mockLogger)

	assert.Empty(t, c.Categories())
	assert.True(t, mockLogger.HasEntry("WARN", "failed to load category definitions"))

	// Without rules nothing matches.
	_, ok := c.Categorize("migros lausanne")
	assert.False(t, ok)
}

func TestCategorizer_Categorize(t *testing.T) {
	c := NewCategorizer(&store.MockCategoryStore{Categories: testRules()}, logging.NewMockLogger())

	tests := []struct {
		name             string
		description      string
		expectedCategory string
		expectMatch      bool
	}{
		{
			name:             "simple match",
			description:      "migros lausanne",
			expectedCategory: "Groceries",
			expectMatch:      true,
		},
		{
			name:             "match ignores case",
			description:      "MIGROS LAUSANNE",
			expectedCategory: "Groceries",
			expectMatch:      true,
		},
		{
			name:             "keyword inside a longer word",
			description:      "sbb-easyride quarterly pass",
			expectedCategory: "Transport",
			expectMatch:      true,
		},
		{
			name:             "first rule in file order wins",
			description:      "coop restaurant zurich",
			expectedCategory: "Groceries",
			expectMatch:      true,
		},
		{
			name:        "no match",
			description: "unrelated purchase",
			expectMatch: false,
		},
		{
			name:        "empty description",
			description: "   ",
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, ok := c.Categorize(tt.description)

			require.Equal(t, tt.expectMatch, ok)
			if tt.expectMatch {
				assert.Equal(t, tt.expectedCategory, category)
			}
		})
	}
}

func TestCategorizer_Categorize_CaseSensitive(t *testing.T) {
	c := NewCategorizer(&store.MockCategoryStore{Categories: testRules()}, logging.NewMockLogger())
	c.SetCaseSensitive(true)

	_, ok := c.Categorize("MIGROS LAUSANNE")
	assert.False(t, ok)

	category, ok := c.Categorize("migros lausanne")
	require.True(t, ok)
	assert.Equal(t, "Groceries", category)
}

func TestCategorizer_Categorize_SkipsEmptyKeywords(t *testing.T) {
	rules := []models.CategoryConfig{
		{Name: "Broken", Keywords: []string{""}},
		{Name: "Groceries", Keywords: []string{"migros"}},
	}
	c := NewCategorizer(&store.MockCategoryStore{Categories: rules}, logging.NewMockLogger())

	// The empty keyword must not match everything.
	category, ok := c.Categorize("migros lausanne")

	require.True(t, ok)
	assert.Equal(t, "Groceries", category)
}

func TestCategorizer_ReloadCategories(t *testing.T) {
	mockStore := &store.MockCategoryStore{Categories: testRules()}
	c := NewCategorizer(mockStore, logging.NewMockLogger())
	require.Len(t, c.Categories(), 3)

	mockStore.Categories = append(mockStore.Categories,
		models.CategoryConfig{Name: "Health", Keywords: []string{"pharmacy"}})
	c.ReloadCategories()

	assert.Len(t, c.Categories(), 4)
	category, ok := c.Categorize("pharmacy basel")
	require.True(t, ok)
	assert.Equal(t, "Health", category)
}

func TestCategorizer_NilStore(t *testing.T) {
	c := NewCategorizer(nil, logging.NewMockLogger())

	_, ok := c.Categorize("anything")

	assert.False(t, ok)
}
