package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		name  string
		paid  float64
		total float64
		want  string
	}{
		{"no payments", 0, 30, PaymentStatusUnsettled},
		{"partial", 10, 30, PaymentStatusPartiallyPaid},
		{"exact", 30, 30, PaymentStatusSettled},
		{"over-paid", 35, 30, PaymentStatusSettled},
		{"zero total zero paid", 0, 0, PaymentStatusUnsettled},
		{"zero total paid", 5, 0, PaymentStatusSettled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaymentStatusFor(tt.paid, tt.total))
		})
	}
}

func TestOutstanding(t *testing.T) {
	s := OrderSummary{Total: 30, Paid: 10}
	assert.InDelta(t, 20, s.Outstanding(), 1e-9)

	over := OrderSummary{Total: 30, Paid: 45}
	assert.InDelta(t, -15, over.Outstanding(), 1e-9)
}
