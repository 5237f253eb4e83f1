package slot

import "github.com/BruksfildServices01/meeting-slots/internal/httperr"

// ===============================
// Busy event status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// Counts reports whether an event in this status occupies time.
func (s Status) Counts() bool {
	return s == StatusScheduled
}

// CanCancel only allows scheduled events to be cancelled.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
