package services

import (
	"fmt"
	"sync"
	"testing"

	"orderdesk-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.StatusEvent{},
		&models.Payment{},
		&models.PaymentReminderLog{},
	)
	require.NoError(t, err)
	return db
}

type recordedEvent struct {
	Topic   string
	Event   string
	Payload interface{}
}

// fakePublisher records what the services fan out.
type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakePublisher) Publish(topic, event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{Topic: topic, Event: event, Payload: payload})
}

func (f *fakePublisher) recorded() []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedEvent(nil), f.events...)
}

func (f *fakePublisher) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = nil
}

func createTestCustomer(t *testing.T, db *gorm.DB, email string) models.Customer {
	t.Helper()
	customer := models.Customer{
		Type:      models.CustomerTypeIndividual,
		FirstName: "Ana",
		LastName:  "García",
		Email:     email,
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Active: true}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func newTestOrderService(t *testing.T, db *gorm.DB) (*OrderService, *fakePublisher) {
	t.Helper()
	pub := &fakePublisher{}
	return NewOrderService(db, pub, zap.NewNop()), pub
}

func newTestPaymentService(t *testing.T, db *gorm.DB) (*PaymentService, *fakePublisher) {
	t.Helper()
	pub := &fakePublisher{}
	return NewPaymentService(db, pub, zap.NewNop()), pub
}
