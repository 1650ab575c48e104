// Package normalize transforms raw source tables into the unified row
// schema, applying each source's classification rules.
package normalize

import (
	"fmt"
	"strings"
	"time"
)

// MissingColumnError reports a required logical column that could not be
// resolved in a source table. It halts the run for that file only.
type MissingColumnError struct {
	Source  string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Source, strings.Join(e.Columns, ", "))
}

// timestampFormats are tried in order when parsing source timestamps.
// Zoned inputs are converted to UTC and kept naive from there on.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
}

// parseTimestamp parses a source timestamp best-effort. The zero time
// marks failure; callers keep the row and continue.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampFormats {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}

// dayFirstFormats cover the day-first locale convention of subscription
// exports, with an ISO fallback.
var dayFirstFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"02 January 2006",
	"2 January 2006",
	"2006-01-02",
}

// parseDayFirst parses a subscription date. ok is false when no layout
// matches; such rows are dropped.
func parseDayFirst(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dayFirstFormats {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
