package slot

import (
	"errors"
	"fmt"
	"time"
)

const (
	hmLayout      = "15:04"
	MinutesPerDay = 24 * 60
)

var ErrInvalidTimeFormat = errors.New("invalid_time_format")

// TimeFormatError reports a time string that is not a zero-padded "HH:MM".
// Index is the position of the offending event, or -1 when not known.
type TimeFormatError struct {
	Value string
	Index int
}

func (e *TimeFormatError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid time format %q in event %d: expected HH:MM", e.Value, e.Index)
	}
	return fmt.Sprintf("invalid time format %q: expected HH:MM", e.Value)
}

func (e *TimeFormatError) Unwrap() error {
	return ErrInvalidTimeFormat
}

// ParseHM converts "HH:MM" into minutes since midnight.
func ParseHM(hm string) (int, error) {
	// time.Parse accepts a single-digit hour for "15", the length check keeps it zero-padded.
	if len(hm) != len(hmLayout) {
		return 0, &TimeFormatError{Value: hm, Index: -1}
	}
	t, err := time.Parse(hmLayout, hm)
	if err != nil {
		return 0, &TimeFormatError{Value: hm, Index: -1}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatHM is the inverse of ParseHM for values in [0, 1440).
func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func mustParseHM(hm string) int {
	m, err := ParseHM(hm)
	if err != nil {
		panic(err)
	}
	return m
}
