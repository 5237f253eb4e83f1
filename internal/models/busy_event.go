package models

import "time"

type BusyEvent struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"index:idx_busy_owner_date" json:"owner_id"`

	// ISO calendar date (YYYY-MM-DD) the event belongs to
	Date string `gorm:"size:10;not null;index:idx_busy_owner_date" json:"date"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Title     string `gorm:"size:255" json:"title"`

	Status      string     `gorm:"size:20;default:'scheduled'" json:"status"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
