package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile      = "file_path"
	FieldBackup    = "backup_path"
	FieldExpenseID = "expense_id"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldMonth     = "month"
	FieldReason    = "reason"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCount     = "count"
	FieldLine      = "line"
	FieldDelimiter = "delimiter"
	FieldFormat    = "format"
)
