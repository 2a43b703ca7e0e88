package models

import (
	"fjacquet/expense-tracker/internal/logging"
)

// CategorizationStats tracks how imported expenses received their
// category: carried in the file, matched by keyword, or assigned the
// fallback category.
type CategorizationStats struct {
	Total    int // Total number of expenses processed
	Provided int // Number of expenses that arrived with a category
	Matched  int // Number of expenses categorized by keyword match
	Fallback int // Number of expenses assigned the fallback category
}

// NewCategorizationStats creates a new CategorizationStats instance
func NewCategorizationStats() *CategorizationStats {
	return &CategorizationStats{}
}

// LogSummary logs a summary of categorization statistics
func (cs CategorizationStats) LogSummary(logger logging.Logger, source string) {
	if logger == nil {
		return
	}

	logger.Info("categorization summary",
		logging.Field{Key: "source", Value: source},
		logging.Field{Key: "total", Value: cs.Total},
		logging.Field{Key: "provided", Value: cs.Provided},
		logging.Field{Key: "matched", Value: cs.Matched},
		logging.Field{Key: "fallback", Value: cs.Fallback},
		logging.Field{Key: "match_rate", Value: cs.MatchRate()},
	)
}

// MatchRate calculates the keyword match rate as a percentage of the
// expenses that needed categorization.
func (cs CategorizationStats) MatchRate() float64 {
	needed := cs.Total - cs.Provided
	if needed == 0 {
		return 0.0
	}
	return float64(cs.Matched) / float64(needed) * 100.0
}

// IncrementTotal increments the total expense count
func (cs *CategorizationStats) IncrementTotal() {
	cs.Total++
}

// IncrementProvided increments the carried-category count
func (cs *CategorizationStats) IncrementProvided() {
	cs.Provided++
}

// IncrementMatched increments the keyword match count
func (cs *CategorizationStats) IncrementMatched() {
	cs.Matched++
}

// IncrementFallback increments the fallback count
func (cs *CategorizationStats) IncrementFallback() {
	cs.Fallback++
}
