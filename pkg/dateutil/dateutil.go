package dateutil

import (
	"fmt"
	"time"
)

// MonthLayout is the wire format for a calendar month, e.g. "2025-12".
const MonthLayout = "2006-01"

// ParseMonth parses a "YYYY-MM" string into the first day of that month (UTC).
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return t, nil
}

// FormatMonth renders a date as its "YYYY-MM" month identifier.
func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}

// FormatMonthLabel renders a human-readable month label, e.g. "December 2025".
func FormatMonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// MonthStart normalizes a date to the first day of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths adds a specified number of calendar months to a date.
// Standard library rollover semantics apply; dates at month granularity
// (day 1) always land on day 1 of the target month.
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// MonthsBetween returns the number of whole calendar months from one month
// to another, ignoring the day component.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
