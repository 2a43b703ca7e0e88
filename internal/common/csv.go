// Package common provides the shared CSV plumbing used by the export
// and import paths.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

var log = logging.GetLogger()

// Global CSV delimiter - can be configured via config file or environment variable
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		// Use first rune only
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string) ([]TCSVRow, error) {
	log.Info("reading CSV file",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		log.WithError(err).Error("failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Info("successfully read CSV data",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// WriteExpensesToCSV writes expenses to a CSV file in the interchange
// format. Amounts keep full precision so an export followed by an
// import reproduces the same values.
func WriteExpensesToCSV(expenses []models.Expense, csvFile string) error {
	if expenses == nil {
		return fmt.Errorf("cannot write nil expenses to CSV")
	}

	log.Info("writing expenses to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close file")
		}
	}()

	rows := make([]models.ExpenseCSV, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, models.ExpenseToCSV(e))
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("failed to marshal expenses to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("successfully wrote expenses to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)})

	return nil
}

// ExportExpensesToCSV exports a slice of expenses to a CSV file
func ExportExpensesToCSV(expenses []models.Expense, csvFile string) error {
	if expenses == nil {
		return fmt.Errorf("cannot write nil expenses to CSV")
	}

	log.Info("exporting expenses to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(Delimiter)})

	return WriteExpensesToCSV(expenses, csvFile)
}
