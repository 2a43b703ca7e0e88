package common

import (
	"strings"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

// CategorizeRowsWithStats fills in the category column of CSV rows that
// arrived without one. The categorizer is tried first; rows it cannot
// place get the fallback category. Rows that already carry a category
// pass through untouched. Runs before row conversion, so every row
// reaches the expense builder with a category set. A summary is logged
// per source.
func CategorizeRowsWithStats(
	rows []models.ExpenseCSV,
	logger logging.Logger,
	categorizer models.ExpenseCategorizer,
	fallbackCategory string,
	source string,
) []models.ExpenseCSV {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if fallbackCategory == "" {
		fallbackCategory = models.CategoryImported
	}

	stats := models.NewCategorizationStats()
	processed := make([]models.ExpenseCSV, len(rows))

	for i, row := range rows {
		stats.IncrementTotal()
		processed[i] = row

		if strings.TrimSpace(row.Category) != "" {
			stats.IncrementProvided()
			continue
		}

		if categorizer != nil {
			if category, ok := categorizer.Categorize(row.Description); ok {
				logger.Debug("row categorized by keyword",
					logging.Field{Key: logging.FieldCategory, Value: category},
					logging.Field{Key: "description", Value: row.Description})
				stats.IncrementMatched()
				processed[i].Category = category
				continue
			}
		}

		logger.Debug("no keyword match, using fallback category",
			logging.Field{Key: logging.FieldCategory, Value: fallbackCategory},
			logging.Field{Key: "description", Value: row.Description})
		stats.IncrementFallback()
		processed[i].Category = fallbackCategory
	}

	stats.LogSummary(logger, source)
	return processed
}
