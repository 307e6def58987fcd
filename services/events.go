package services

import (
	"time"

	"github.com/google/uuid"
)

// Event names pushed through the realtime hub.
const (
	EventStatusChanged   = "order:status_changed"
	EventPaymentUpdated  = "order:payment_updated"
	EventPaymentReminder = "order:payment_reminder"
)

// Publisher fans an event out to one topic's subscribers. Delivery is best
// effort: publish failures are logged by the hub and never reported back,
// the underlying mutation has already committed.
type Publisher interface {
	Publish(topic, event string, payload interface{})
}

// StatusChangedEvent is the payload of EventStatusChanged.
type StatusChangedEvent struct {
	OrderID   uuid.UUID `json:"order_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// PaymentUpdatedEvent is the payload of EventPaymentUpdated.
type PaymentUpdatedEvent struct {
	OrderID       uuid.UUID `json:"order_id"`
	Total         float64   `json:"total"`
	Paid          float64   `json:"paid"`
	PaymentStatus string    `json:"payment_status"`
}

// PaymentReminderEvent is the payload of EventPaymentReminder.
type PaymentReminderEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	Total       float64   `json:"total"`
	Paid        float64   `json:"paid"`
	Outstanding float64   `json:"outstanding"`
}
