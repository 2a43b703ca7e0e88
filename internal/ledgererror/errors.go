// Package ledgererror defines the typed errors shared by the ledger,
// store and command layers.
package ledgererror

import (
	"errors"
	"fmt"
)

// ValidationError represents rejected input on a single field.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s='%s': %s", e.Field, e.Value, e.Reason)
}

// NotFoundError represents a lookup for a record that does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no expense found with id '%s'", e.ID)
}

// PersistenceError represents an I/O failure while reading or writing
// the data file, the backup file or a temporary file.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// CorruptDataError represents a data file that exists but cannot be
// decoded. The file is left untouched so it can be inspected or
// replaced by hand.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data in %s: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error {
	return e.Err
}

// NoBackupError represents an undo attempt with no backup generation
// available.
type NoBackupError struct {
	Path string
}

func (e *NoBackupError) Error() string {
	return fmt.Sprintf("no backup available at %s", e.Path)
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}
