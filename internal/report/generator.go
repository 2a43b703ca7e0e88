package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/expense-tracker/internal/amountutils"
	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/logging"
)

// Generator renders ledger reports in various formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new instance of Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{
		logger: logger.WithField("component", "Generator"),
	}
}

// Generate renders the monthly overview of the ledger in the specified
// format (text or json). It returns the report as a byte slice and an
// error if the format is unsupported.
func (g *Generator) Generate(l *ledger.Ledger, format string) ([]byte, error) {
	switch format {
	case "text":
		return g.generateTextReport(l), nil
	case "json":
		return g.generateJSONReport(l)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// generateTextReport renders the overview as plain text, one month per
// line, newest first.
func (g *Generator) generateTextReport(l *ledger.Ledger) []byte {
	lines := []string{"Expense Report", "=============="}
	for _, month := range Overview(l) {
		lines = append(lines, fmt.Sprintf("%s : %s", month.Month, amountutils.FormatAmountGrouped(month.Total)))
	}
	return []byte(strings.Join(lines, "\n"))
}

// generateJSONReport renders the overview as indented JSON. Totals are
// serialized as strings so their exact decimal values survive.
func (g *Generator) generateJSONReport(l *ledger.Ledger) ([]byte, error) {
	overview := struct {
		Months []MonthTotal `json:"months"`
	}{Months: Overview(l)}

	data, err := json.MarshalIndent(overview, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}
