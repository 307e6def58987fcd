package services

import (
	"math"
	"testing"

	"orderdesk-backend/models"
	"orderdesk-backend/realtime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentSettlesOrder(t *testing.T) {
	db := newTestDB(t)
	orderSvc, _ := newTestOrderService(t, db)
	paySvc, pub := newTestPaymentService(t, db)

	customer := createTestCustomer(t, db, "a@b.com")
	product := createTestProduct(t, db, "Widget", 10.00)
	order, err := orderSvc.Create(customer.ID, "", []LineItemInput{
		{ProductID: product.ID, Quantity: 3, UnitPrice: 10.00},
	})
	require.NoError(t, err)

	payment, err := paySvc.Record(order.ID, 30.00, "cash", "")
	require.NoError(t, err)
	assert.InDelta(t, 30.00, payment.Amount, 1e-9)

	summary, err := paySvc.GetSummary(order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 30.00, summary.Total, 1e-9)
	assert.InDelta(t, 30.00, summary.Paid, 1e-9)
	assert.Equal(t, PaymentStatusSettled, summary.PaymentStatus)

	events := pub.recorded()
	require.Len(t, events, 2)
	want := PaymentUpdatedEvent{
		OrderID:       order.ID,
		Total:         30.00,
		Paid:          30.00,
		PaymentStatus: PaymentStatusSettled,
	}
	assert.Equal(t, realtime.OrderTopic(order.ID), events[0].Topic)
	assert.Equal(t, realtime.CustomerTopic(customer.ID), events[1].Topic)
	for _, e := range events {
		assert.Equal(t, EventPaymentUpdated, e.Event)
		assert.Equal(t, want, e.Payload)
	}
}

func TestPaidEqualsSumOfPayments(t *testing.T) {
	db := newTestDB(t)
	orderSvc, _ := newTestOrderService(t, db)
	paySvc, _ := newTestPaymentService(t, db)

	customer := createTestCustomer(t, db, "a@b.com")
	product := createTestProduct(t, db, "Widget", 25.00)
	order, err := orderSvc.Create(customer.ID, "", []LineItemInput{
		{ProductID: product.ID, Quantity: 4, UnitPrice: 25.00},
	})
	require.NoError(t, err)

	amounts := []float64{10, 40, -5, 30}
	var paid float64
	for _, amount := range amounts {
		_, err := paySvc.Record(order.ID, amount, "card", "")
		require.NoError(t, err)
		paid += amount

		summary, err := paySvc.GetSummary(order.ID)
		require.NoError(t, err)
		assert.InDelta(t, paid, summary.Paid, 1e-9)
		assert.Equal(t, PaymentStatusFor(paid, 100), summary.PaymentStatus)
	}

	var count int64
	db.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&count)
	assert.EqualValues(t, len(amounts), count)
}

func TestOverPaymentReadsAsSettled(t *testing.T) {
	db := newTestDB(t)
	orderSvc, _ := newTestOrderService(t, db)
	paySvc, _ := newTestPaymentService(t, db)

	customer := createTestCustomer(t, db, "a@b.com")
	product := createTestProduct(t, db, "Widget", 10.00)
	order, err := orderSvc.Create(customer.ID, "", []LineItemInput{
		{ProductID: product.ID, Quantity: 1, UnitPrice: 10.00},
	})
	require.NoError(t, err)

	_, err = paySvc.Record(order.ID, 25.00, "cash", "kept the change")
	require.NoError(t, err)

	summary, err := paySvc.GetSummary(order.ID)
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusSettled, summary.PaymentStatus)
	assert.InDelta(t, -15.00, summary.Outstanding(), 1e-9)
}

func TestRecordPaymentRejectsNonFiniteAmount(t *testing.T) {
	db := newTestDB(t)
	paySvc, pub := newTestPaymentService(t, db)

	_, err := paySvc.Record(uuid.New(), math.NaN(), "cash", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = paySvc.Record(uuid.New(), math.Inf(1), "cash", "")
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, pub.recorded())
}

func TestRecordPaymentMissingOrder(t *testing.T) {
	db := newTestDB(t)
	paySvc, pub := newTestPaymentService(t, db)

	_, err := paySvc.Record(uuid.New(), 10.00, "cash", "")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, pub.recorded())

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetSummaryMissingOrder(t *testing.T) {
	db := newTestDB(t)
	paySvc, _ := newTestPaymentService(t, db)

	_, err := paySvc.GetSummary(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
