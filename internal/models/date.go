package models

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/expense-tracker/internal/dateutils"
)

// Date is a day-precision point in time. It marshals to and from the
// canonical YYYY-MM-DD form in JSON while accepting the looser input
// formats on unmarshal.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromTime creates a Date by truncating a time.Time to its day
func DateFromTime(t time.Time) Date {
	return Date{dateutils.TruncateToDay(t)}
}

// ParseDate parses a date string in any accepted format into a Date
func ParseDate(s string) (Date, error) {
	t, err := dateutils.ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// String returns the canonical YYYY-MM-DD form
func (d Date) String() string {
	return dateutils.ToISODate(d.Time)
}

// MonthKey returns the YYYY-MM key of the month containing the date
func (d Date) MonthKey() string {
	return dateutils.MonthKey(d.Time)
}

// Equal reports whether two dates fall on the same day
func (d Date) Equal(other Date) bool {
	return dateutils.CompareDates(d.Time, other.Time) == 0
}

// MarshalJSON encodes the date as a quoted YYYY-MM-DD string
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON decodes a quoted date string in any accepted format
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return fmt.Errorf("date is required")
	}
	t, err := dateutils.ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
