package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobStatusReceived is the status every new order starts in. The vocabulary
// is otherwise open: any non-empty string is a valid status and any
// transition is permitted, matching how the business actually uses it.
const JobStatusReceived = "received"

type Order struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"` // immutable after creation

	Notes     string
	JobStatus string    `gorm:"not null;default:'received'"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	Customer      Customer      `gorm:"foreignKey:CustomerID"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID"`
	Payments      []Payment     `gorm:"foreignKey:OrderID"`
	StatusHistory []StatusEvent `gorm:"foreignKey:OrderID"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.JobStatus == "" {
		o.JobStatus = JobStatusReceived
	}
	return
}

// OrderItem snapshots the product name and unit price at order-creation
// time. Later product edits never change historical order totals.
type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductName string    `gorm:"not null"`
	Quantity    int       `gorm:"not null;default:1"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

// Subtotal is the line total for this item.
func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}
