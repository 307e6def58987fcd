package services

import (
	"orderdesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment-status tiers derived from comparing cumulative payments to the
// order total.
const (
	PaymentStatusUnsettled     = "unsettled"
	PaymentStatusPartiallyPaid = "partially_paid"
	PaymentStatusSettled       = "settled"
)

// OrderSummary is derived, never stored: total always comes from the line
// items and paid from the payment ledger, so the two cannot drift.
type OrderSummary struct {
	Total         float64 `json:"total"`
	Paid          float64 `json:"paid"`
	PaymentStatus string  `json:"payment_status"`
}

// Outstanding is the remaining balance; negative when over-paid.
func (s OrderSummary) Outstanding() float64 {
	return s.Total - s.Paid
}

// PaymentStatusFor is the single derivation of the payment-status tier.
// Over-payment counts as settled.
func PaymentStatusFor(paid, total float64) string {
	switch {
	case paid == 0:
		return PaymentStatusUnsettled
	case paid >= total:
		return PaymentStatusSettled
	default:
		return PaymentStatusPartiallyPaid
	}
}

// summaryFor computes the derived summary inside whatever db handle the
// caller is using, so it can run inside a payment transaction.
func summaryFor(db *gorm.DB, orderID uuid.UUID) (OrderSummary, error) {
	var total float64
	err := db.Model(&models.OrderItem{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Scan(&total).Error
	if err != nil {
		return OrderSummary{}, err
	}

	var paid float64
	err = db.Model(&models.Payment{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paid).Error
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		Total:         total,
		Paid:          paid,
		PaymentStatus: PaymentStatusFor(paid, total),
	}, nil
}
