// Command slots prints the meeting start times available on one day.
//
//	slots -events busy.json -duration 30 -day Fri
//
// The events file is a JSON array of {"start":"HH:MM","end":"HH:MM"}; use "-"
// to read it from stdin. Without -events the day is free.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/BruksfildServices01/meeting-slots/internal/domain/slot"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("slots", flag.ContinueOnError)
	fs.SetOutput(stderr)

	eventsPath := fs.String("events", "", "JSON file with busy events, - for stdin")
	duration := fs.Int("duration", 30, "meeting length in minutes")
	day := fs.String("day", "", `ISO date (2026-02-06) or weekday name ("Fri")`)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	fail := color.New(color.FgRed)

	events, err := readEvents(*eventsPath, stdin)
	if err != nil {
		fail.Fprintf(stderr, "slots: %v\n", err)
		return 1
	}

	slots, err := slot.SuggestSlots(events, *duration, *day)
	if err != nil {
		fail.Fprintf(stderr, "slots: %v\n", err)
		return 1
	}

	for _, s := range slots {
		fmt.Fprintln(stdout, s)
	}
	return 0
}

func readEvents(path string, stdin io.Reader) ([]slot.Event, error) {
	if path == "" {
		return nil, nil
	}

	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var events []slot.Event
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}
