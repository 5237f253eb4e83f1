package slot

import "fmt"

// ===============================
// Scheduling policy
// ===============================

// Policy holds the working-day rules, all values in minutes since midnight
// (Step and Buffer are plain minute counts).
type Policy struct {
	DayStart          int
	DayEnd            int
	Step              int
	Buffer            int
	LunchStart        int
	LunchEnd          int
	FridayLatestStart int
}

const (
	DefaultDayStart          = "09:00"
	DefaultDayEnd            = "17:00"
	DefaultStepMinutes       = 15
	DefaultBufferMinutes     = 15
	DefaultLunchStart        = "12:00"
	DefaultLunchEnd          = "13:00"
	DefaultFridayLatestStart = "15:00"
)

func DefaultPolicy() Policy {
	return Policy{
		DayStart:          mustParseHM(DefaultDayStart),
		DayEnd:            mustParseHM(DefaultDayEnd),
		Step:              DefaultStepMinutes,
		Buffer:            DefaultBufferMinutes,
		LunchStart:        mustParseHM(DefaultLunchStart),
		LunchEnd:          mustParseHM(DefaultLunchEnd),
		FridayLatestStart: mustParseHM(DefaultFridayLatestStart),
	}
}

// WorkdayLength is the number of minutes between DayStart and DayEnd.
func (p Policy) WorkdayLength() int {
	return p.DayEnd - p.DayStart
}

func (p Policy) Validate() error {
	inDay := func(name string, v int) error {
		if v < 0 || v > MinutesPerDay {
			return fmt.Errorf("policy: %s out of range: %d", name, v)
		}
		return nil
	}

	for _, f := range []struct {
		name string
		v    int
	}{
		{"day_start", p.DayStart},
		{"day_end", p.DayEnd},
		{"lunch_start", p.LunchStart},
		{"lunch_end", p.LunchEnd},
		{"friday_latest_start", p.FridayLatestStart},
	} {
		if err := inDay(f.name, f.v); err != nil {
			return err
		}
	}

	if p.DayEnd <= p.DayStart {
		return fmt.Errorf("policy: day_end %s must be after day_start %s", FormatHM(p.DayEnd), FormatHM(p.DayStart))
	}
	if p.Step <= 0 {
		return fmt.Errorf("policy: step must be positive, got %d", p.Step)
	}
	if p.Buffer < 0 {
		return fmt.Errorf("policy: buffer must not be negative, got %d", p.Buffer)
	}
	if p.LunchEnd < p.LunchStart {
		return fmt.Errorf("policy: lunch_end %s before lunch_start %s", FormatHM(p.LunchEnd), FormatHM(p.LunchStart))
	}
	return nil
}
