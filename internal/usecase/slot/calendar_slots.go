package slot

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/meeting-slots/internal/domain/slot"
	"github.com/BruksfildServices01/meeting-slots/internal/httperr"
)

// CalendarSlots suggests slots from the events an owner stored for a date.
type CalendarSlots struct {
	repo    domain.Repository
	suggest *SuggestSlots
}

func NewCalendarSlots(repo domain.Repository, suggest *SuggestSlots) *CalendarSlots {
	return &CalendarSlots{repo: repo, suggest: suggest}
}

func (uc *CalendarSlots) Execute(
	ctx context.Context,
	ownerID uint,
	date string,
	duration int,
	requestID string,
) (*SuggestResult, error) {

	date = strings.TrimSpace(date)
	if _, err := domain.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	rows, err := uc.repo.ListBusyEventsForDay(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}

	return uc.suggest.Execute(ctx, SuggestInput{
		Events:    domain.EventsFromModels(rows),
		Duration:  duration,
		Day:       date,
		OwnerID:   &ownerID,
		RequestID: requestID,
	})
}
