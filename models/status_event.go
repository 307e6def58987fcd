package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusEvent is one row of the append-only job-status history. Rows are
// never updated or deleted; the order's current status is always the status
// of its newest event.
type StatusEvent struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID uuid.UUID `gorm:"type:uuid;index;not null"`

	Status    string `gorm:"not null"`
	Note      string
	CreatedAt time.Time `gorm:"index;default:CURRENT_TIMESTAMP"`
}

func (e *StatusEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
