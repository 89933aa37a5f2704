// Package dates parses and buckets the date-only strings stored on
// applications, interviews, and reminders. Date-only strings are
// interpreted as local midnight, never UTC, so a stored calendar day
// displays as the same day in every host timezone.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the canonical stored form for date-only values.
const Layout = "2006-01-02"

// ParseLocal parses a YYYY-MM-DD string as local midnight. It also
// accepts full RFC 3339 timestamps, truncating them to the local
// calendar day of their date portion.
func ParseLocal(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	// Timestamps keep only their calendar-day portion.
	if len(value) > len(Layout) {
		value = value[:len(Layout)]
	}

	t, err := time.ParseInLocation(Layout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", value, err)
	}
	return t, nil
}

// MonthKey returns the YYYY-MM bucket key for a time.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// StartOfDay truncates a time to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
