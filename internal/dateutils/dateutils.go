// Package dateutils provides the date operations the tracker relies on:
// ISO calendar dates and YYYY-MM month keys for monthly aggregation.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts used throughout the application.
const (
	DateLayoutISO  = "2006-01-02"
	MonthKeyLayout = "2006-01"
)

// ToISODate formats a time.Time as an ISO calendar date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ParseISODate parses a YYYY-MM-DD date string.
func ParseISODate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
	}
	return t, nil
}

// MonthKey returns the YYYY-MM key for a point in time.
func MonthKey(date time.Time) string {
	return date.Format(MonthKeyLayout)
}

// ParseMonthKey parses a YYYY-MM key into the first day of that month.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(MonthKeyLayout, strings.TrimSpace(key))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse month: %s", key)
	}
	return t, nil
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// PreviousMonthKey returns the key of the month before the given key.
// Returns an empty string when the key does not parse.
func PreviousMonthKey(key string) string {
	t, err := ParseMonthKey(key)
	if err != nil {
		return ""
	}
	return MonthKey(t.AddDate(0, -1, 0))
}

// LastNMonths returns the first days of the n consecutive calendar months
// ending at the reference date, oldest first. n < 1 yields an empty slice.
func LastNMonths(ref time.Time, n int) []time.Time {
	if n < 1 {
		return nil
	}
	months := make([]time.Time, 0, n)
	first := StartOfMonth(ref).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		months = append(months, first.AddDate(0, i, 0))
	}
	return months
}
