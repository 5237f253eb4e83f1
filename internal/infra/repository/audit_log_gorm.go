package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/meeting-slots/internal/models"
)

type AuditLogFilter struct {
	OwnerID uint
	Action  string
	Entity  string
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}

type AuditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

// ListAuditLogs returns one page of the owner's logs, newest first, plus the
// total matching the filter.
func (r *AuditLogGormRepository) ListAuditLogs(
	ctx context.Context,
	f AuditLogFilter,
) ([]models.AuditLog, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("owner_id = ?", f.OwnerID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
