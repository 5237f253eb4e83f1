package slot

import (
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

// IsFriday reports whether the day designator names a Friday. It accepts an
// ISO date ("2026-02-06") or a weekday name or abbreviation ("Fri", "FRIDAY").
// Anything else, malformed dates included, is not a Friday.
func IsFriday(day string) bool {
	d := strings.TrimSpace(day)
	if d == "" {
		return false
	}

	if date, err := time.Parse(isoDateLayout, d); err == nil {
		return date.Weekday() == time.Friday
	}

	return strings.HasPrefix(strings.ToLower(d), "fri")
}

// IsFridayValue classifies a designator of unknown type, as decoded from JSON.
// Non-string values are never a Friday.
func IsFridayValue(day any) bool {
	s, ok := day.(string)
	if !ok {
		return false
	}
	return IsFriday(s)
}

// ParseDate validates an ISO calendar date.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(isoDateLayout, strings.TrimSpace(date))
}
