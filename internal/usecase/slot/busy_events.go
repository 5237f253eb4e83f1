package slot

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/meeting-slots/internal/audit"
	domain "github.com/BruksfildServices01/meeting-slots/internal/domain/slot"
	"github.com/BruksfildServices01/meeting-slots/internal/httperr"
	"github.com/BruksfildServices01/meeting-slots/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateBusyEventInput struct {
	OwnerID   uint
	Date      string
	Start     string
	End       string
	Title     string
	RequestID string
}

type CreateBusyEvent struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateBusyEvent(repo domain.Repository, auditor Auditor) *CreateBusyEvent {
	return &CreateBusyEvent{repo: repo, audit: auditorOrNop(auditor)}
}

// Execute stores the event. Times must be well formed; an inverted interval
// is kept as entered and simply never counts as busy.
func (uc *CreateBusyEvent) Execute(
	ctx context.Context,
	in CreateBusyEventInput,
) (*models.BusyEvent, error) {

	date := strings.TrimSpace(in.Date)
	if _, err := domain.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, err := domain.ParseHM(in.Start); err != nil {
		return nil, httperr.ErrBusiness("invalid_time_format")
	}
	if _, err := domain.ParseHM(in.End); err != nil {
		return nil, httperr.ErrBusiness("invalid_time_format")
	}

	ev := &models.BusyEvent{
		OwnerID:   in.OwnerID,
		Date:      date,
		StartTime: in.Start,
		EndTime:   in.End,
		Title:     in.Title,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBusyEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:   &in.OwnerID,
		RequestID: in.RequestID,
		Action:    "busy_event_created",
		Entity:    "busy_event",
		EntityID:  &ev.ID,
	})

	return ev, nil
}

// ======================================================
// CANCEL
// ======================================================

type CancelBusyEvent struct {
	repo  domain.Repository
	audit Auditor
	now   func() time.Time
}

func NewCancelBusyEvent(repo domain.Repository, auditor Auditor) *CancelBusyEvent {
	return &CancelBusyEvent{repo: repo, audit: auditorOrNop(auditor), now: time.Now}
}

func (uc *CancelBusyEvent) Execute(
	ctx context.Context,
	ownerID uint,
	eventID uint,
	requestID string,
) (*models.BusyEvent, error) {

	ev, err := uc.repo.GetBusyEventForOwner(ctx, eventID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("event_not_found")
		}
		return nil, err
	}

	if err := domain.Cancel(ev, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBusyEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OwnerID:   &ownerID,
		RequestID: requestID,
		Action:    "busy_event_cancelled",
		Entity:    "busy_event",
		EntityID:  &ev.ID,
	})

	return ev, nil
}

// ======================================================
// LIST
// ======================================================

type ListBusyEvents struct {
	repo domain.Repository
}

func NewListBusyEvents(repo domain.Repository) *ListBusyEvents {
	return &ListBusyEvents{repo: repo}
}

func (uc *ListBusyEvents) Execute(
	ctx context.Context,
	ownerID uint,
	date string,
) ([]models.BusyEvent, error) {

	if _, err := domain.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListBusyEventsForDay(ctx, ownerID, strings.TrimSpace(date))
}
