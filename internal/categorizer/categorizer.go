// Package categorizer assigns categories to expenses by matching their
// descriptions against keyword rules loaded from a YAML file.
package categorizer

import (
	"strings"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Categorizer matches expense descriptions against category keyword
// rules. Matching is substring based and case-insensitive by default.
// Rules are tried in file order; the first keyword that matches wins.
type Categorizer struct {
	categories    []models.CategoryConfig
	store         CategoryStoreInterface
	logger        logging.Logger
	caseSensitive bool
}

var _ models.ExpenseCategorizer = (*Categorizer)(nil)

// NewCategorizer creates a categorizer and loads its rules from the
// store. A nil logger falls back to the package logger.
func NewCategorizer(store CategoryStoreInterface, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = log
	}
	c := &Categorizer{
		categories: []models.CategoryConfig{},
		store:      store,
		logger:     logger,
	}
	c.loadCategories()
	return c
}

// SetCaseSensitive toggles exact-case keyword matching.
func (c *Categorizer) SetCaseSensitive(sensitive bool) {
	c.caseSensitive = sensitive
}

// Categorize returns the category of the first keyword rule that
// matches the description, and whether any rule matched at all.
func (c *Categorizer) Categorize(description string) (string, bool) {
	if strings.TrimSpace(description) == "" {
		return "", false
	}

	haystack := description
	if !c.caseSensitive {
		haystack = strings.ToUpper(description)
	}

	for _, categoryConfig := range c.categories {
		for _, keyword := range categoryConfig.Keywords {
			needle := keyword
			if !c.caseSensitive {
				needle = strings.ToUpper(keyword)
			}
			if needle == "" {
				continue
			}
			if strings.Contains(haystack, needle) {
				c.logger.Debug("description categorized using keyword matching",
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: categoryConfig.Name})
				return categoryConfig.Name, true
			}
		}
	}

	return "", false
}

// Categories returns the loaded category rules.
func (c *Categorizer) Categories() []models.CategoryConfig {
	return c.categories
}

// ReloadCategories reloads the rules from the store. This can be called
// when the underlying YAML file has been updated.
func (c *Categorizer) ReloadCategories() {
	c.loadCategories()
}

func (c *Categorizer) loadCategories() {
	if c.store == nil {
		return
	}
	categories, err := c.store.LoadCategories()
	if err != nil {
		c.logger.WithError(err).Warn("failed to load category definitions")
		return
	}
	c.categories = categories
	c.logger.Debug("loaded category definitions",
		logging.Field{Key: logging.FieldCount, Value: len(categories)})
}
