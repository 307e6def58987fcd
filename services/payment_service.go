// services/payment_service.go
package services

import (
	"fmt"
	"math"

	"orderdesk-backend/models"
	"orderdesk-backend/realtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentService struct {
	db        *gorm.DB
	publisher Publisher
	logger    *zap.Logger
}

func NewPaymentService(db *gorm.DB, publisher Publisher, logger *zap.Logger) *PaymentService {
	return &PaymentService{db: db, publisher: publisher, logger: logger}
}

// Record appends one payment and recomputes the order summary in the same
// transaction, then announces the updated summary on both topics. The amount
// only has to be finite: no sign or bound check, a negative amount is a
// compensating entry and over-payment simply reads as settled.
func (s *PaymentService) Record(orderID uuid.UUID, amount float64, method, note string) (*models.Payment, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: amount must be a finite number", ErrValidation)
	}

	var payment models.Payment
	var summary OrderSummary
	var customerID uuid.UUID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return TranslateDBError(err)
		}
		customerID = order.CustomerID

		payment = models.Payment{
			OrderID: orderID,
			Amount:  amount,
			Method:  method,
			Note:    note,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return TranslateDBError(err)
		}

		var err error
		summary, err = summaryFor(tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	payload := PaymentUpdatedEvent{
		OrderID:       orderID,
		Total:         summary.Total,
		Paid:          summary.Paid,
		PaymentStatus: summary.PaymentStatus,
	}
	s.publisher.Publish(realtime.OrderTopic(orderID), EventPaymentUpdated, payload)
	s.publisher.Publish(realtime.CustomerTopic(customerID), EventPaymentUpdated, payload)

	return &payment, nil
}

// GetSummary is a pure read of the derived summary. An order with no
// payments reads as {total, 0, unsettled}.
func (s *PaymentService) GetSummary(orderID uuid.UUID) (OrderSummary, error) {
	var count int64
	if err := s.db.Model(&models.Order{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
		return OrderSummary{}, err
	}
	if count == 0 {
		return OrderSummary{}, ErrNotFound
	}
	return summaryFor(s.db, orderID)
}
