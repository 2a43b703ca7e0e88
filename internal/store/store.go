// Package store persists the ledger to disk. Every save goes through
// an atomic write-with-backup sequence, which is what makes undo and
// crash safety possible: the data file always holds either the old or
// the new state, never a partial write, and the backup file is exactly
// one successful save behind.
package store

import (
	"encoding/json"
	"os"

	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/ledger"
	"fjacquet/expense-tracker/internal/ledgererror"
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

// Store reads and writes a ledger at a fixed pair of paths.
type Store struct {
	DataFile   string
	BackupFile string
}

// New creates a store for the given data file. An empty backup path
// defaults to the data file with a .bak suffix.
func New(dataFile, backupFile string) *Store {
	if backupFile == "" {
		backupFile = dataFile + ".bak"
	}
	return &Store{DataFile: dataFile, BackupFile: backupFile}
}

// Load reads the ledger from the data file. A missing file is not an
// error: the tracker starts empty on first use.
func (s *Store) Load() (*ledger.Ledger, error) {
	if !fileutils.FileExists(s.DataFile) {
		log.Debug("data file absent, starting with an empty ledger",
			logging.Field{Key: logging.FieldFile, Value: s.DataFile})
		return ledger.New(), nil
	}

	l, err := s.loadFrom(s.DataFile)
	if err != nil {
		return nil, err
	}
	log.Debug("ledger loaded",
		logging.Field{Key: logging.FieldFile, Value: s.DataFile},
		logging.Field{Key: logging.FieldCount, Value: len(l.Expenses)})
	return l, nil
}

// Save writes the ledger atomically. The sequence is: marshal, write a
// temp file and sync it, copy the current data file to the backup slot,
// then rename the temp file over the data file. A crash at any point
// leaves the previous state readable, and any failure before the rename
// aborts the save with the data file untouched.
func (s *Store) Save(l *ledger.Ledger) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return &ledgererror.PersistenceError{Op: "marshal", Path: s.DataFile, Err: err}
	}

	tempFile := s.DataFile + ".tmp"
	if err := fileutils.WriteFileSync(tempFile, data, models.PermissionDataFile); err != nil {
		return &ledgererror.PersistenceError{Op: "write temp file", Path: tempFile, Err: err}
	}

	if fileutils.FileExists(s.DataFile) {
		if err := fileutils.CopyFile(s.DataFile, s.BackupFile, models.PermissionDataFile); err != nil {
			s.discardTemp(tempFile)
			return &ledgererror.PersistenceError{Op: "backup", Path: s.BackupFile, Err: err}
		}
	}

	if err := os.Rename(tempFile, s.DataFile); err != nil {
		s.discardTemp(tempFile)
		return &ledgererror.PersistenceError{Op: "rename", Path: s.DataFile, Err: err}
	}

	log.Debug("ledger saved",
		logging.Field{Key: logging.FieldFile, Value: s.DataFile},
		logging.Field{Key: logging.FieldCount, Value: len(l.Expenses)})
	return nil
}

// Undo promotes the backup to the current state. The promotion runs
// through Save, so the state being undone lands in the backup slot and
// a second undo toggles back rather than going further into the past.
func (s *Store) Undo() (*ledger.Ledger, error) {
	if !fileutils.FileExists(s.BackupFile) {
		return nil, &ledgererror.NoBackupError{Path: s.BackupFile}
	}

	restored, err := s.loadFrom(s.BackupFile)
	if err != nil {
		return nil, err
	}
	if err := s.Save(restored); err != nil {
		return nil, err
	}

	log.Info("backup promoted to current state",
		logging.Field{Key: logging.FieldBackup, Value: s.BackupFile},
		logging.Field{Key: logging.FieldCount, Value: len(restored.Expenses)})
	return restored, nil
}

// HasBackup reports whether an undo target exists.
func (s *Store) HasBackup() bool {
	return fileutils.FileExists(s.BackupFile)
}

// Clear replaces the ledger with an empty one. The save pushes the
// previous state into the backup slot, so a clear can be undone.
func (s *Store) Clear() (*ledger.Ledger, error) {
	l := ledger.New()
	if err := s.Save(l); err != nil {
		return nil, err
	}
	log.Info("ledger cleared",
		logging.Field{Key: logging.FieldFile, Value: s.DataFile})
	return l, nil
}

// ExportBackup copies the current data file to an arbitrary path.
func (s *Store) ExportBackup(dst string) error {
	if !fileutils.FileExists(s.DataFile) {
		return &ledgererror.PersistenceError{Op: "backup", Path: s.DataFile, Err: os.ErrNotExist}
	}
	if err := fileutils.CopyFile(s.DataFile, dst, models.PermissionExportFile); err != nil {
		return &ledgererror.PersistenceError{Op: "backup", Path: dst, Err: err}
	}
	log.Info("data file copied",
		logging.Field{Key: logging.FieldFile, Value: s.DataFile},
		logging.Field{Key: logging.FieldBackup, Value: dst})
	return nil
}

// Restore replaces the current state with the ledger stored at src. The
// file is fully parsed and validated before anything is written, and
// the save keeps the pre-restore state in the backup slot.
func (s *Store) Restore(src string) (*ledger.Ledger, error) {
	if !fileutils.FileExists(src) {
		return nil, &ledgererror.PersistenceError{Op: "restore", Path: src, Err: os.ErrNotExist}
	}

	l, err := s.loadFrom(src)
	if err != nil {
		return nil, err
	}
	if err := s.Save(l); err != nil {
		return nil, err
	}

	log.Info("ledger restored",
		logging.Field{Key: logging.FieldFile, Value: src},
		logging.Field{Key: logging.FieldCount, Value: len(l.Expenses)})
	return l, nil
}

// loadFrom parses and validates a ledger file. Anything that cannot be
// decoded into a valid ledger reports the file as corrupt; callers
// propagate the error without writing, so the file stays available for
// manual repair.
func (s *Store) loadFrom(path string) (*ledger.Ledger, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, &ledgererror.PersistenceError{Op: "read", Path: path, Err: err}
	}

	l := ledger.New()
	if err := json.Unmarshal(data, l); err != nil {
		return nil, &ledgererror.CorruptDataError{Path: path, Err: err}
	}
	for _, e := range l.Expenses {
		if err := e.Validate(); err != nil {
			return nil, &ledgererror.CorruptDataError{Path: path, Err: err}
		}
	}

	l.Normalize()
	return l, nil
}

func (s *Store) discardTemp(tempFile string) {
	if err := fileutils.RemoveIfExists(tempFile); err != nil {
		log.Warn("failed to remove temp file",
			logging.Field{Key: logging.FieldFile, Value: tempFile},
			logging.Field{Key: logging.FieldError, Value: err.Error()})
	}
}
