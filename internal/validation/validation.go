// Package validation provides the path and format checks shared by the
// command layer.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsValidInputPath checks that a path names an existing regular file.
func IsValidInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is empty")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path is not a regular file: %s", path)
	}
	return nil
}

// IsValidOutputPath checks that a path can receive a file. The path must
// not name an existing directory; a missing parent directory is fine,
// writers create it.
func IsValidOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is empty")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory: %s", path)
	}

	parent := filepath.Dir(path)
	if info, err := os.Stat(parent); err == nil && !info.IsDir() {
		return fmt.Errorf("parent of %s is not a directory", path)
	}
	return nil
}

// IsValidReportFormat checks if the given report format is supported.
func IsValidReportFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s. Supported formats are 'text', 'json'", format)
	}
}

// CheckDataFilePermissions flags a data file that other users can
// access. The file holds personal finance records; anything wider than
// owner-only access is reported. A missing file passes.
func CheckDataFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if mode := info.Mode().Perm(); mode&0077 != 0 {
		return fmt.Errorf("data file permissions are too permissive: %s on %s. Recommended 0600", mode.String(), path)
	}
	return nil
}
