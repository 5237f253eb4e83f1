package slot

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func mustSuggest(t *testing.T, events []Event, duration int, day string) []string {
	t.Helper()
	slots, err := SuggestSlots(events, duration, day)
	if err != nil {
		t.Fatalf("SuggestSlots: unexpected error: %v", err)
	}
	return slots
}

func assertHas(t *testing.T, slots []string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !slices.Contains(slots, w) {
			t.Errorf("expected %s in %v", w, slots)
		}
	}
}

func assertMissing(t *testing.T, slots []string, unwanted ...string) {
	t.Helper()
	for _, u := range unwanted {
		if slices.Contains(slots, u) {
			t.Errorf("did not expect %s in %v", u, slots)
		}
	}
}

func TestSuggest_EmptyDayIsArithmeticSequence(t *testing.T) {
	p := DefaultPolicy()

	for _, duration := range []int{15, 30, 45, 60, 90, 240} {
		var want []string
		for m := p.DayStart; m <= p.DayEnd-duration; m += p.Step {
			if m >= p.LunchStart && m < p.LunchEnd {
				continue
			}
			want = append(want, FormatHM(m))
		}

		got := mustSuggest(t, nil, duration, "Mon")
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("duration %d: expected %v, got %v", duration, want, got)
		}
	}
}

func TestSuggest_StrictlyIncreasingAndStepAligned(t *testing.T) {
	events := []Event{{"10:05", "10:40"}, {"14:10", "15:20"}}
	slots := mustSuggest(t, events, 25, "Wed")

	prev := -1
	for _, s := range slots {
		m := hm(s)
		if m <= prev {
			t.Fatalf("not strictly increasing: %v", slots)
		}
		if (m-hm("09:00"))%15 != 0 {
			t.Fatalf("%s not aligned to 15 minute step", s)
		}
		prev = m
	}
}

func TestSuggest_SingleEventBlocksOverlap(t *testing.T) {
	slots := mustSuggest(t, []Event{{"10:00", "11:00"}}, 30, "2026-02-01")

	assertMissing(t, slots, "10:00", "10:30", "11:00")
	assertHas(t, slots, "09:30", "11:15")
}

func TestSuggest_OverlappingEventsMerged(t *testing.T) {
	events := []Event{{"09:30", "10:30"}, {"10:00", "11:00"}}
	slots := mustSuggest(t, events, 30, "Tue")

	assertMissing(t, slots, "10:15", "11:00")
	assertHas(t, slots, "09:00", "11:15")
}

func TestSuggest_BackToBackEventsBlockContinuously(t *testing.T) {
	events := []Event{{"09:00", "10:00"}, {"10:00", "10:30"}}
	slots := mustSuggest(t, events, 15, "Mon")

	assertMissing(t, slots, "09:00", "10:00", "10:30")
	assertHas(t, slots, "10:45")
}

func TestSuggest_EventClippedAtDayStart(t *testing.T) {
	slots := mustSuggest(t, []Event{{"08:00", "09:30"}}, 30, "Wed")

	assertMissing(t, slots, "09:00", "09:30")
	assertHas(t, slots, "09:45")
}

func TestSuggest_EventOutsideHoursIgnored(t *testing.T) {
	slots := mustSuggest(t, []Event{{"07:00", "08:00"}}, 60, "2026-02-01")

	assertHas(t, slots, "09:00", "16:00")
}

func TestSuggest_UnsortedEvents(t *testing.T) {
	events := []Event{
		{"13:00", "14:00"},
		{"09:30", "10:00"},
		{"11:00", "12:00"},
	}
	slots := mustSuggest(t, events, 30, "2026-02-01")

	if len(slots) < 2 || slots[0] != "09:00" || slots[1] != "10:15" {
		t.Fatalf("expected slots to start with [09:00 10:15], got %v", slots)
	}
	assertMissing(t, slots, "09:30")
}

func TestSuggest_NoStartDuringLunch(t *testing.T) {
	slots := mustSuggest(t, nil, 30, "2026-02-01")

	assertMissing(t, slots, "12:00", "12:15", "12:30", "12:45")
	assertHas(t, slots, "11:45", "13:00")
}

func TestSuggest_MeetingMayRunIntoLunch(t *testing.T) {
	slots := mustSuggest(t, nil, 60, "Mon")

	assertHas(t, slots, "11:30", "11:45")
}

func TestSuggest_MeetingEndsExactlyAtClose(t *testing.T) {
	slots := mustSuggest(t, nil, 60, "Thu")

	assertHas(t, slots, "16:00")
	assertMissing(t, slots, "16:15")
	if last := slots[len(slots)-1]; last != "16:00" {
		t.Fatalf("expected last slot 16:00, got %s", last)
	}
}

func TestSuggest_DurationBoundary(t *testing.T) {
	full := DefaultPolicy().WorkdayLength()

	got := mustSuggest(t, nil, full, "Mon")
	if !reflect.DeepEqual(got, []string{"09:00"}) {
		t.Fatalf("expected [09:00], got %v", got)
	}

	if got := mustSuggest(t, nil, full+1, "Fri"); len(got) != 0 {
		t.Fatalf("expected no slots, got %v", got)
	}
}

func TestSuggest_InvalidDurationIsEmpty(t *testing.T) {
	for _, d := range []int{0, -15} {
		got := mustSuggest(t, nil, d, "Mon")
		if got == nil || len(got) != 0 {
			t.Fatalf("duration %d: expected empty non-nil list, got %#v", d, got)
		}
	}
}

func TestSuggest_InvalidDurationSkipsEventParsing(t *testing.T) {
	got, err := SuggestSlots([]Event{{"bad", "10:00"}}, 0, "Mon")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestSuggest_MalformedEventTimeFails(t *testing.T) {
	_, err := SuggestSlots([]Event{{"10:00", "11:00"}, {"10:00", "1100"}}, 30, "Mon")
	if !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

func TestSuggest_FridayCutoff(t *testing.T) {
	for _, day := range []string{"Fri", "friday", "2026-02-06"} {
		slots := mustSuggest(t, nil, 30, day)

		assertHas(t, slots, "15:00")
		assertMissing(t, slots, "15:15", "16:00")
	}
}

func TestSuggest_NonFridayAllowsLateStarts(t *testing.T) {
	slots := mustSuggest(t, nil, 30, "Thu")

	assertHas(t, slots, "15:15", "16:00", "16:30")
}

func TestSuggest_FridayNeverResumesAfterCutoff(t *testing.T) {
	latest := DefaultPolicy().FridayLatestStart

	cases := [][]Event{
		nil,
		{{"14:30", "15:15"}},
		{{"15:00", "15:30"}},
	}

	for _, events := range cases {
		slots := mustSuggest(t, events, 15, "Fri")
		for _, s := range slots {
			if hm(s) > latest {
				t.Fatalf("events %v: slot %s after Friday cutoff in %v", events, s, slots)
			}
		}
	}
}

func TestSuggest_FridayFullDayMeeting(t *testing.T) {
	got := mustSuggest(t, nil, DefaultPolicy().WorkdayLength(), "Fri")
	if !reflect.DeepEqual(got, []string{"09:00"}) {
		t.Fatalf("expected [09:00], got %v", got)
	}
}

func TestSuggest_Deterministic(t *testing.T) {
	events := []Event{{"10:00", "11:00"}, {"13:30", "14:00"}}
	a := mustSuggest(t, events, 45, "Fri")
	b := mustSuggest(t, events, 45, "Fri")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("results differ: %v vs %v", a, b)
	}
}

func TestSuggestForValue_NonStringDay(t *testing.T) {
	s := NewSuggester(DefaultPolicy())

	slots, err := s.SuggestForValue(nil, 30, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertHas(t, slots, "16:00")
}

func TestSuggester_CustomPolicy(t *testing.T) {
	p := DefaultPolicy()
	p.Step = 30
	p.Buffer = 0
	s := NewSuggester(p)

	slots, err := s.Suggest([]Event{{"10:00", "11:00"}}, 60, "Mon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertHas(t, slots, "09:00", "11:00", "16:00")
	assertMissing(t, slots, "09:30", "10:00", "10:30", "12:00", "12:30", "09:15")
}
