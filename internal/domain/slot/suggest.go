package slot

// verdict is what a rule decides about one candidate start.
type verdict int

const (
	accept verdict = iota
	skip
	stop // no later candidate can pass either
)

// rule inspects a candidate [start, end).
type rule func(start, end int) verdict

// Suggester enumerates meeting start times under a fixed Policy.
// It holds no mutable state and is safe for concurrent use.
type Suggester struct {
	policy Policy
}

func NewSuggester(p Policy) *Suggester {
	return &Suggester{policy: p}
}

func (s *Suggester) Policy() Policy {
	return s.policy
}

// Suggest returns every accepted start time as "HH:MM", in increasing order.
// A nil events slice means a free day. A non-positive duration, or one longer
// than the working day, yields an empty result.
func (s *Suggester) Suggest(events []Event, duration int, day string) ([]string, error) {
	return s.suggest(events, duration, IsFriday(day))
}

// SuggestForValue is Suggest for a day designator of unknown type.
func (s *Suggester) SuggestForValue(events []Event, duration int, day any) ([]string, error) {
	return s.suggest(events, duration, IsFridayValue(day))
}

func (s *Suggester) suggest(events []Event, duration int, friday bool) ([]string, error) {
	p := s.policy

	// checked before the events are read, so a hopeless duration never reports a format error
	if duration <= 0 || duration > p.WorkdayLength() {
		return []string{}, nil
	}

	busy, err := Normalize(events, p)
	if err != nil {
		return nil, err
	}

	return s.enumerate(duration, s.rules(busy, friday)), nil
}

func (s *Suggester) enumerate(duration int, rules []rule) []string {
	p := s.policy
	slots := []string{}

candidates:
	for t := p.DayStart; t+duration <= p.DayEnd; t += p.Step {
		end := t + duration
		for _, r := range rules {
			switch r(t, end) {
			case stop:
				break candidates
			case skip:
				continue candidates
			}
		}
		slots = append(slots, FormatHM(t))
	}

	return slots
}

// rules lists the rejection checks in evaluation order. The Friday cutoff is
// first so it can end the walk before any other check runs.
func (s *Suggester) rules(busy []Interval, friday bool) []rule {
	p := s.policy
	var rules []rule

	if friday {
		rules = append(rules, fridayCutoff(p.FridayLatestStart))
	}

	return append(rules,
		lunchStart(p.LunchStart, p.LunchEnd),
		withinDay(p.DayStart, p.DayEnd),
		free(busy),
	)
}

func fridayCutoff(latest int) rule {
	return func(start, _ int) verdict {
		if start > latest {
			return stop
		}
		return accept
	}
}

// lunchStart rejects candidates that begin inside [from, until). A meeting
// may still run into lunch.
func lunchStart(from, until int) rule {
	return func(start, _ int) verdict {
		if start >= from && start < until {
			return skip
		}
		return accept
	}
}

func withinDay(dayStart, dayEnd int) rule {
	return func(start, end int) verdict {
		if start < dayStart || end > dayEnd {
			return skip
		}
		return accept
	}
}

func free(busy []Interval) rule {
	return func(start, end int) verdict {
		for _, b := range busy {
			if b.Overlaps(start, end) {
				return skip
			}
		}
		return accept
	}
}

var defaultSuggester = NewSuggester(DefaultPolicy())

// SuggestSlots runs Suggest under DefaultPolicy.
func SuggestSlots(events []Event, duration int, day string) ([]string, error) {
	return defaultSuggester.Suggest(events, duration, day)
}
