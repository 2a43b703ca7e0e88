// Package csvparser parses expense CSV files into expense records.
// Rows are validated one by one, so a malformed row is reported and
// skipped instead of aborting the whole import.
package csvparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"fjacquet/expense-tracker/internal/common"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// requiredColumns are the columns a file must carry to be importable.
// All other columns are optional; unknown columns are ignored.
var requiredColumns = []string{"date", "amount"}

// RejectedRow describes a data row that failed validation. Line is the
// 1-based row number in the file, counting the header as row 1.
type RejectedRow struct {
	Line   int
	Reason string
}

func (r RejectedRow) String() string {
	return fmt.Sprintf("line %d: %s", r.Line, r.Reason)
}

// ImportResult holds the outcome of parsing one file: the expenses that
// passed validation and the rows that were rejected.
type ImportResult struct {
	Expenses []models.Expense
	Rejected []RejectedRow
}

// RowsRead returns the number of data rows the file contained.
func (r *ImportResult) RowsRead() int {
	return len(r.Expenses) + len(r.Rejected)
}

// ParseFile parses an expense CSV file and returns the valid expenses
// together with the rejected rows. Rows without a category are run
// through the categorizer first and fall back to fallbackCategory, so
// a missing category is never a reason for rejection.
func ParseFile(filePath string, categorizer models.ExpenseCategorizer, fallbackCategory string) (*ImportResult, error) {
	log.WithField("file", filePath).Info("parsing expense CSV file")

	valid, err := ValidateFormat(filePath)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if !valid {
		return nil, fmt.Errorf("unrecognized expense CSV format")
	}

	rows, lines, rejected, err := readRows(filePath)
	if err != nil {
		log.WithError(err).Error("failed to read expense CSV file")
		return nil, fmt.Errorf("error reading expense CSV: %w", err)
	}

	rows = common.CategorizeRowsWithStats(rows, log, categorizer, fallbackCategory, filePath)

	result := &ImportResult{Rejected: rejected}
	for i, row := range rows {
		expense, err := convertRowToExpense(row)
		if err != nil {
			log.WithError(err).WithField("line", lines[i]).Warn("skipping row")
			result.Rejected = append(result.Rejected, RejectedRow{Line: lines[i], Reason: err.Error()})
			continue
		}
		result.Expenses = append(result.Expenses, expense)
	}
	sort.Slice(result.Rejected, func(i, j int) bool {
		return result.Rejected[i].Line < result.Rejected[j].Line
	})

	log.WithFields(
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "imported", Value: len(result.Expenses)},
		logging.Field{Key: "rejected", Value: len(result.Rejected)},
	).Info("finished parsing expense CSV file")
	return result, nil
}

// ValidateFormat checks whether the file looks like an expense CSV:
// it must open, and its header must carry the date and amount columns.
// A header-only file is valid and simply imports nothing.
func ValidateFormat(filePath string) (bool, error) {
	log.WithField("file", filePath).Debug("validating expense CSV format")

	file, err := os.Open(filePath)
	if err != nil {
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("failed to close CSV file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = common.Delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		log.WithField("file", filePath).Info("CSV file is empty")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading CSV header: %w", err)
	}

	columns := headerIndex(header)
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			log.WithField("column", required).Info("required column missing from expense CSV")
			return false, nil
		}
	}
	return true, nil
}

// readRows reads all data rows of the file. Rows the CSV reader cannot
// decode are collected as rejections; decodable rows are returned
// together with their row numbers.
func readRows(filePath string) ([]models.ExpenseCSV, []int, []RejectedRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("failed to close CSV file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = common.Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	columns := headerIndex(header)

	var (
		rows     []models.ExpenseCSV
		lines    []int
		rejected []RejectedRow
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rejected = append(rejected, RejectedRow{Line: line, Reason: err.Error()})
			continue
		}
		if recordEmpty(record) {
			continue
		}
		rows = append(rows, models.ExpenseCSV{
			ID:          fieldAt(record, columns, "id"),
			Date:        fieldAt(record, columns, "date"),
			Category:    fieldAt(record, columns, "category"),
			Amount:      fieldAt(record, columns, "amount"),
			Description: fieldAt(record, columns, "description"),
		})
		lines = append(lines, line)
	}
	return rows, lines, rejected, nil
}

// convertRowToExpense converts a CSV row to an Expense. Imported rows
// always receive fresh ids, so importing a file can never collide with
// ids already in the ledger.
func convertRowToExpense(row models.ExpenseCSV) (models.Expense, error) {
	return models.NewExpenseBuilder().
		WithDate(strings.TrimSpace(row.Date)).
		WithCategory(strings.TrimSpace(row.Category)).
		WithAmountFromString(strings.TrimSpace(row.Amount)).
		WithDescription(strings.TrimSpace(row.Description)).
		Build()
}

// headerIndex maps canonical column names to their position in the
// header. Names are matched case-insensitively and known aliases are
// folded to their canonical form; the first occurrence wins.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int)
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		if canonical, ok := models.CSVHeaderAliases[name]; ok {
			name = canonical
		}
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}
	return columns
}

func fieldAt(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func recordEmpty(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
