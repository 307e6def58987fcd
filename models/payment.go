package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is an append-only ledger record. Corrections are compensating
// records (a negative amount), never edits.
type Payment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID uuid.UUID `gorm:"type:uuid;index;not null"`

	Amount    float64 `gorm:"type:decimal(10,2);not null"`
	Method    string
	Note      string
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
