// Package dateutils provides the date parsing and month-key operations used
// throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date format constants accepted on input
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutEuropean = "02-01-2006"
	DateLayoutSlash    = "02/01/2006"
	MonthKeyLayout     = "2006-01"
)

// AcceptedFormats is the list of formats tried when parsing dates,
// in priority order. The first is the canonical storage format.
var AcceptedFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateLayoutEuropean,
	DateLayoutSlash,
}

// ParseDate parses a date string using the accepted formats and returns the
// date truncated to midnight UTC. Inputs that carry a time of day keep only
// the date part.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, format := range AcceptedFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return TruncateToDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims whitespace and collapses internal runs of spaces
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	re := regexp.MustCompile(`\s+`)
	return re.ReplaceAllString(dateStr, " ")
}

// TruncateToDay drops the time-of-day component, keeping the date in UTC
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey returns the YYYY-MM key of the month containing the given date
func MonthKey(date time.Time) string {
	return date.Format(MonthKeyLayout)
}

// ParseMonthKey validates a YYYY-MM month key and returns the first day of
// that month.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(MonthKeyLayout, strings.TrimSpace(key))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q, expected YYYY-MM", key)
	}
	return t, nil
}

// CurrentMonthKey returns the month key for the current date
func CurrentMonthKey() string {
	return MonthKey(time.Now())
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// CompareDates compares two dates by day and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = TruncateToDay(date1)
	date2 = TruncateToDay(date2)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	}
	return 0
}
