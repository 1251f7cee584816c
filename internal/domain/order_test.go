package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	commissionRate := decimal.RequireFromString("0.06")
	vatRate := decimal.RequireFromString("0.22")

	tests := []struct {
		name       string
		subtotal   string
		commission string
		vat        string
		total      string
	}{
		{
			name:       "two tickets at 100",
			subtotal:   "200",
			commission: "12",
			vat:        "2.64",
			total:      "214.64",
		},
		{
			name:       "rounds half up",
			subtotal:   "33.33",
			commission: "2",       // 1.9998 -> 2.00
			vat:        "0.44",    // 0.44 exact
			total:      "35.77",
		},
		{
			name:       "zero subtotal",
			subtotal:   "0",
			commission: "0",
			vat:        "0",
			total:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(decimal.RequireFromString(tt.subtotal), commissionRate, vatRate)

			assert.True(t, got.Commission.Equal(decimal.RequireFromString(tt.commission)),
				"commission: got %s", got.Commission)
			assert.True(t, got.VAT.Equal(decimal.RequireFromString(tt.vat)),
				"vat: got %s", got.VAT)
			assert.True(t, got.Total.Equal(decimal.RequireFromString(tt.total)),
				"total: got %s", got.Total)
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.False(t, OrderStatusPending.Terminal())
	assert.True(t, OrderStatusConfirmed.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.True(t, OrderStatusExpired.Terminal())
}

func TestCanTransitionOrder(t *testing.T) {
	assert.True(t, CanTransitionOrder(OrderStatusPending, OrderStatusConfirmed))
	assert.True(t, CanTransitionOrder(OrderStatusPending, OrderStatusCancelled))
	assert.True(t, CanTransitionOrder(OrderStatusPending, OrderStatusExpired))

	// Terminal statuses are final.
	for _, from := range []OrderStatus{OrderStatusConfirmed, OrderStatusCancelled, OrderStatusExpired} {
		for _, to := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusCancelled, OrderStatusExpired} {
			assert.False(t, CanTransitionOrder(from, to), "%s -> %s must be rejected", from, to)
		}
	}
}
