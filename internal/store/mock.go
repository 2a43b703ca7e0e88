package store

import (
	"fjacquet/expense-tracker/internal/models"
)

// MockCategoryStore is a mock implementation of CategoryStore for testing.
type MockCategoryStore struct {
	Categories []models.CategoryConfig

	// Error flag for testing error conditions
	LoadCategoriesError error
}

// LoadCategories returns the mock categories.
func (m *MockCategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	return m.Categories, nil
}

// FindConfigFile is a mock implementation that returns a dummy path.
func (m *MockCategoryStore) FindConfigFile(filename string) (string, error) {
	return "/mock/path/" + filename, nil
}
