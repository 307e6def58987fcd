// models/payment_reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentReminderLog records each outstanding-balance reminder pushed to a
// customer's realtime topic, so the daily job never nags twice in one day.
type PaymentReminderLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`

	Outstanding float64 `gorm:"type:decimal(10,2)"`
	SentAt      time.Time

	gorm.Model
}

func (r *PaymentReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
