package slot

import (
	"time"

	"github.com/BruksfildServices01/meeting-slots/internal/models"
)

func Cancel(ev *models.BusyEvent, now time.Time) error {
	if err := CanCancel(Status(ev.Status)); err != nil {
		return err
	}

	ev.Status = string(StatusCancelled)
	ev.CancelledAt = &now
	return nil
}

// EventsFromModels keeps the events that still occupy time, in the shape the
// normalizer reads.
func EventsFromModels(rows []models.BusyEvent) []Event {
	out := make([]Event, 0, len(rows))
	for _, r := range rows {
		if !Status(r.Status).Counts() {
			continue
		}
		out = append(out, Event{Start: r.StartTime, End: r.EndTime})
	}
	return out
}
