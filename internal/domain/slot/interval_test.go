package slot

import (
	"errors"
	"reflect"
	"testing"
)

func hm(s string) int { return mustParseHM(s) }

func TestNormalize_ClipBufferMerge(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		name   string
		events []Event
		want   []Interval
	}{
		{
			name:   "empty",
			events: nil,
			want:   []Interval{},
		},
		{
			name:   "buffer extends end only",
			events: []Event{{"10:00", "11:00"}},
			want:   []Interval{{hm("10:00"), hm("11:15")}},
		},
		{
			name:   "clipped at day start",
			events: []Event{{"08:00", "09:30"}},
			want:   []Interval{{hm("09:00"), hm("09:45")}},
		},
		{
			name:   "buffer capped at day end",
			events: []Event{{"16:30", "16:50"}},
			want:   []Interval{{hm("16:30"), hm("17:00")}},
		},
		{
			name:   "clipped at day end",
			events: []Event{{"16:30", "18:00"}},
			want:   []Interval{{hm("16:30"), hm("17:00")}},
		},
		{
			name:   "outside hours dropped",
			events: []Event{{"07:00", "08:00"}, {"17:00", "18:00"}, {"08:00", "09:00"}},
			want:   []Interval{},
		},
		{
			name:   "inverted and zero length dropped",
			events: []Event{{"11:00", "10:00"}, {"14:00", "14:00"}},
			want:   []Interval{},
		},
		{
			name:   "overlapping merged",
			events: []Event{{"09:30", "10:30"}, {"10:00", "11:00"}},
			want:   []Interval{{hm("09:30"), hm("11:15")}},
		},
		{
			name:   "buffer makes neighbours adjacent",
			events: []Event{{"10:00", "10:45"}, {"11:00", "11:30"}},
			want:   []Interval{{hm("10:00"), hm("11:45")}},
		},
		{
			name:   "unsorted input",
			events: []Event{{"13:00", "14:00"}, {"09:30", "10:00"}, {"11:00", "12:00"}},
			want: []Interval{
				{hm("09:30"), hm("10:15")},
				{hm("11:00"), hm("12:15")},
				{hm("13:00"), hm("14:15")},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.events, p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNormalize_FormatError(t *testing.T) {
	events := []Event{{"10:00", "11:00"}, {"9:00", "10:00"}}

	_, err := Normalize(events, DefaultPolicy())
	if !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}

	var tfe *TimeFormatError
	if !errors.As(err, &tfe) {
		t.Fatalf("expected *TimeFormatError, got %T", err)
	}
	if tfe.Index != 1 || tfe.Value != "9:00" {
		t.Fatalf("expected event 1 value 9:00, got %d %q", tfe.Index, tfe.Value)
	}
}

func TestNormalize_IdempotentOnMergedSet(t *testing.T) {
	p := DefaultPolicy()
	p.Buffer = 0

	merged := []Interval{
		{hm("09:00"), hm("09:45")},
		{hm("11:00"), hm("12:15")},
		{hm("16:00"), hm("17:00")},
	}

	events := make([]Event, 0, len(merged))
	for _, iv := range merged {
		events = append(events, Event{Start: FormatHM(iv.Start), End: FormatHM(iv.End)})
	}

	got, err := Normalize(events, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, merged) {
		t.Fatalf("expected %v, got %v", merged, got)
	}

	if again := Merge(got); !reflect.DeepEqual(again, got) {
		t.Fatalf("Merge not idempotent: %v vs %v", again, got)
	}
}

func TestMerge(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want []Interval
	}{
		{"overlap", Interval{0, 10}, Interval{5, 20}, []Interval{{0, 20}}},
		{"contained", Interval{0, 30}, Interval{5, 20}, []Interval{{0, 30}}},
		{"adjacent", Interval{0, 10}, Interval{10, 20}, []Interval{{0, 20}}},
		{"disjoint", Interval{0, 10}, Interval{11, 20}, []Interval{{0, 10}, {11, 20}}},
		{"same start", Interval{0, 10}, Interval{0, 5}, []Interval{{0, 10}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Merge([]Interval{tc.a, tc.b}); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Merge(a, b): expected %v, got %v", tc.want, got)
			}
			// order of input must not matter
			if got := Merge([]Interval{tc.b, tc.a}); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Merge(b, a): expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	in := []Interval{{20, 30}, {0, 10}}
	_ = Merge(in)
	if in[0] != (Interval{20, 30}) || in[1] != (Interval{0, 10}) {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestInterval_OverlapsHalfOpen(t *testing.T) {
	iv := Interval{hm("10:00"), hm("11:00")}

	if iv.Overlaps(hm("09:30"), hm("10:00")) {
		t.Error("meeting ending at busy start must not overlap")
	}
	if iv.Overlaps(hm("11:00"), hm("11:30")) {
		t.Error("meeting starting at busy end must not overlap")
	}
	if !iv.Overlaps(hm("10:45"), hm("11:15")) {
		t.Error("expected overlap")
	}
	if iv.String() != "10:00-11:00" {
		t.Errorf("unexpected String(): %s", iv.String())
	}
}
