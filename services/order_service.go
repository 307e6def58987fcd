// services/order_service.go
package services

import (
	"fmt"
	"strings"
	"time"

	"orderdesk-backend/models"
	"orderdesk-backend/realtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LineItemInput carries one order line as submitted from the new-order
// form. The unit price is the value captured client-side at submit time and
// is stored as-is: the snapshot is deliberate, later product price edits
// must not change historical orders.
type LineItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
}

// OrderWithSummary pairs an order with its derived payment summary for the
// listing pages.
type OrderWithSummary struct {
	Order   models.Order
	Summary OrderSummary
}

type OrderService struct {
	db        *gorm.DB
	publisher Publisher
	logger    *zap.Logger
}

func NewOrderService(db *gorm.DB, publisher Publisher, logger *zap.Logger) *OrderService {
	return &OrderService{db: db, publisher: publisher, logger: logger}
}

// Create persists an order and its line items in one transaction,
// all-or-nothing. The customer must exist; each line's product must exist so
// its name can be snapshotted alongside the caller-supplied price.
func (s *OrderService) Create(customerID uuid.UUID, notes string, items []LineItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: an order needs at least one line item", ErrValidation)
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, "id = ?", customerID).Error; err != nil {
			return TranslateDBError(err)
		}

		order = models.Order{
			CustomerID: customerID,
			Notes:      notes,
			JobStatus:  models.JobStatusReceived,
		}
		for _, item := range items {
			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				return TranslateDBError(err)
			}
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
			})
		}

		if err := tx.Create(&order).Error; err != nil {
			return TranslateDBError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// TransitionStatus updates the order's cached status and appends the history
// event in one transaction, then announces the change on the order's and the
// owning customer's topics. Any non-empty status string is accepted and any
// transition, including backward, is permitted.
func (s *OrderService) TransitionStatus(orderID uuid.UUID, status, note string) (*models.StatusEvent, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrValidation)
	}

	var event models.StatusEvent
	var customerID uuid.UUID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return TranslateDBError(err)
		}
		customerID = order.CustomerID

		if err := tx.Model(&order).Update("job_status", status).Error; err != nil {
			return TranslateDBError(err)
		}

		event = models.StatusEvent{
			OrderID:   orderID,
			Status:    status,
			Note:      note,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&event).Error; err != nil {
			return TranslateDBError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Publish strictly after commit; never announce state that didn't
	// persist.
	payload := StatusChangedEvent{
		OrderID:   orderID,
		Status:    event.Status,
		Timestamp: event.CreatedAt,
		Note:      event.Note,
	}
	s.publisher.Publish(realtime.OrderTopic(orderID), EventStatusChanged, payload)
	s.publisher.Publish(realtime.CustomerTopic(customerID), EventStatusChanged, payload)

	return &event, nil
}

// Get loads one order with its items, payments, history and customer.
func (s *OrderService) Get(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Preload("Customer").
		Preload("Items").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&order, "id = ?", orderID).Error
	if err != nil {
		return nil, TranslateDBError(err)
	}
	return &order, nil
}

// ListAll returns every order, newest first, with payment summaries.
func (s *OrderService) ListAll() ([]OrderWithSummary, error) {
	var orders []models.Order
	err := s.db.Preload("Customer").Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, TranslateDBError(err)
	}
	return s.withSummaries(orders)
}

// ListForCustomer returns the customer's own orders, newest first.
func (s *OrderService) ListForCustomer(customerID uuid.UUID) ([]OrderWithSummary, error) {
	var orders []models.Order
	err := s.db.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, TranslateDBError(err)
	}
	return s.withSummaries(orders)
}

// GetForCustomer loads one order scoped to its owner. A customer asking for
// someone else's order gets ErrNotFound, not a hint that it exists.
func (s *OrderService) GetForCustomer(customerID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&order, "id = ? AND customer_id = ?", orderID, customerID).Error
	if err != nil {
		return nil, TranslateDBError(err)
	}
	return &order, nil
}

// OwnedBy reports whether the order belongs to the customer. The realtime
// hub uses it to decide whether a customer may join an order topic.
func (s *OrderService) OwnedBy(orderID, customerID uuid.UUID) bool {
	var count int64
	if err := s.db.Model(&models.Order{}).
		Where("id = ? AND customer_id = ?", orderID, customerID).
		Count(&count).Error; err != nil {
		s.logger.Error("order ownership check failed", zap.Error(err))
		return false
	}
	return count > 0
}

func (s *OrderService) withSummaries(orders []models.Order) ([]OrderWithSummary, error) {
	result := make([]OrderWithSummary, 0, len(orders))
	for _, order := range orders {
		summary, err := summaryFor(s.db, order.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, OrderWithSummary{Order: order, Summary: summary})
	}
	return result, nil
}
