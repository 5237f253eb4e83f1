package slot

import (
	"context"

	"github.com/BruksfildServices01/meeting-slots/internal/models"
)

type Repository interface {
	// -------- Busy events --------
	CreateBusyEvent(
		ctx context.Context,
		ev *models.BusyEvent,
	) error

	GetBusyEventForOwner(
		ctx context.Context,
		eventID uint,
		ownerID uint,
	) (*models.BusyEvent, error)

	UpdateBusyEvent(
		ctx context.Context,
		ev *models.BusyEvent,
	) error

	// ListBusyEventsForDay returns every event of the owner on date, any status,
	// ordered by start time.
	ListBusyEventsForDay(
		ctx context.Context,
		ownerID uint,
		date string,
	) ([]models.BusyEvent, error)
}
