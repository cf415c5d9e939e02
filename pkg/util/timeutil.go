package util

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted on every API surface.
const DateLayout = "2006-01-02"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate reads a YYYY-MM-DD calendar date as midnight UTC. Surrounding
// whitespace is ignored.
func ParseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty")
	}
	return time.ParseInLocation(DateLayout, trimmed, time.UTC)
}

// FormatDate renders the UTC calendar date of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
