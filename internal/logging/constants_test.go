package logging

import (
	"testing"
)

func TestConstants(t *testing.T) {
	if FieldFile == "" {
		t.Error("FieldFile constant should not be empty")
	}
	if FieldExpenseID == "" {
		t.Error("FieldExpenseID constant should not be empty")
	}
	if FieldMonth == "" {
		t.Error("FieldMonth constant should not be empty")
	}
	if FieldCount == "" {
		t.Error("FieldCount constant should not be empty")
	}
	if FieldDelimiter == "" {
		t.Error("FieldDelimiter constant should not be empty")
	}
}
