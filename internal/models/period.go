package models

import (
	"fmt"
	"time"
)

const periodLayout = "2006-01"

// PeriodKeyOf truncates t to its UTC year-month key.
func PeriodKeyOf(t time.Time) string {
	return t.UTC().Format(periodLayout)
}

// ParsePeriodKey validates a "YYYY-MM" key and returns the first instant of
// that month in UTC.
func ParsePeriodKey(key string) (time.Time, error) {
	if len(key) != len(periodLayout) {
		return time.Time{}, fmt.Errorf("period %q must be formatted YYYY-MM", key)
	}
	t, err := time.Parse(periodLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("period %q must be formatted YYYY-MM", key)
	}
	return t, nil
}

// MonthRange returns the half-open [start, end) interval covered by key.
func MonthRange(key string) (time.Time, time.Time, error) {
	start, err := ParsePeriodKey(key)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}

// ValidYear reports whether y is a four-digit year.
func ValidYear(y string) bool {
	if len(y) != 4 {
		return false
	}
	_, err := time.Parse("2006", y)
	return err == nil
}

// ValidDate reports whether d is a "YYYY-MM-DD" calendar date.
func ValidDate(d string) bool {
	if len(d) != len(time.DateOnly) {
		return false
	}
	_, err := time.Parse(time.DateOnly, d)
	return err == nil
}
