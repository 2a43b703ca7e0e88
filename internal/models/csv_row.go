package models

// ExpenseCSV represents a single row in the interchange CSV format.
// All fields are strings so that malformed values surface as per-row
// validation failures instead of aborting a whole import.
type ExpenseCSV struct {
	ID          string `csv:"id"`
	Date        string `csv:"date"`
	Category    string `csv:"category"`
	Amount      string `csv:"amount"`
	Description string `csv:"description"`
}

// CSVColumns lists the canonical CSV column names in output order.
var CSVColumns = []string{"id", "date", "category", "amount", "description"}

// CSVHeaderAliases maps accepted alternative column names to their
// canonical form.
var CSVHeaderAliases = map[string]string{
	"amt":  "amount",
	"note": "description",
}

// ExpenseToCSV converts an expense to its CSV row form. The amount keeps
// full precision so that an export followed by an import reproduces the
// same values.
func ExpenseToCSV(e Expense) ExpenseCSV {
	return ExpenseCSV{
		ID:          e.ID,
		Date:        e.Date.String(),
		Category:    e.Category,
		Amount:      e.Amount.String(),
		Description: e.Description,
	}
}
