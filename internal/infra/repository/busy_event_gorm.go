package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/meeting-slots/internal/domain/slot"
	"github.com/BruksfildServices01/meeting-slots/internal/models"
)

type BusyEventGormRepository struct {
	db *gorm.DB
}

func NewBusyEventGormRepository(db *gorm.DB) *BusyEventGormRepository {
	return &BusyEventGormRepository{db: db}
}

// --------------------------------------------------
// Busy events
// --------------------------------------------------

func (r *BusyEventGormRepository) CreateBusyEvent(
	ctx context.Context,
	ev *models.BusyEvent,
) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *BusyEventGormRepository) GetBusyEventForOwner(
	ctx context.Context,
	eventID uint,
	ownerID uint,
) (*models.BusyEvent, error) {

	var ev models.BusyEvent
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", eventID, ownerID).
		First(&ev).Error; err != nil {
		return nil, err
	}

	return &ev, nil
}

func (r *BusyEventGormRepository) UpdateBusyEvent(
	ctx context.Context,
	ev *models.BusyEvent,
) error {
	return r.db.WithContext(ctx).Save(ev).Error
}

func (r *BusyEventGormRepository) ListBusyEventsForDay(
	ctx context.Context,
	ownerID uint,
	date string,
) ([]models.BusyEvent, error) {

	var events []models.BusyEvent
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND date = ?", ownerID, date).
		Order("start_time ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

// Compile-time check
var _ domain.Repository = (*BusyEventGormRepository)(nil)
