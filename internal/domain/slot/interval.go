package slot

import "sort"

// Event is a raw busy entry as supplied by the caller.
type Event struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Interval is a half-open busy range [Start, End) in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps uses half-open semantics: touching intervals do not overlap.
func (iv Interval) Overlaps(start, end int) bool {
	return start < iv.End && end > iv.Start
}

func (iv Interval) String() string {
	return FormatHM(iv.Start) + "-" + FormatHM(iv.End)
}

// Normalize turns raw events into the sorted, merged busy set for the policy's
// working day. Inverted, zero-length and out-of-hours events are dropped
// silently; only a malformed time string is an error.
func Normalize(events []Event, p Policy) ([]Interval, error) {
	busy := make([]Interval, 0, len(events))

	for i, ev := range events {
		start, err := ParseHM(ev.Start)
		if err != nil {
			return nil, withIndex(err, i)
		}
		end, err := ParseHM(ev.End)
		if err != nil {
			return nil, withIndex(err, i)
		}

		if end <= start {
			continue
		}
		if end <= p.DayStart || start >= p.DayEnd {
			continue
		}

		start = max(start, p.DayStart)
		end = min(end, p.DayEnd)

		// buffer trails the event only and never runs past close of day
		end = min(end+p.Buffer, p.DayEnd)

		if end > start {
			busy = append(busy, Interval{Start: start, End: end})
		}
	}

	return Merge(busy), nil
}

// Merge sorts intervals by start and joins overlapping or adjacent ones.
// The input slice is not modified.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return []Interval{}
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start == sorted[j].Start {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].Start < sorted[j].Start
	})

	out := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if iv.Start <= last.End {
			last.End = max(last.End, iv.End)
			continue
		}
		out = append(out, iv)
	}
	return out
}

func withIndex(err error, i int) error {
	if tfe, ok := err.(*TimeFormatError); ok {
		return &TimeFormatError{Value: tfe.Value, Index: i}
	}
	return err
}
