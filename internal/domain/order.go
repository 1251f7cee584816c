package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusExpired   OrderStatus = "expired"
)

// Terminal reports whether no further transition may leave the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusCancelled || s == OrderStatusExpired
}

var orderTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending: {
		OrderStatusConfirmed: true,
		OrderStatusCancelled: true,
		OrderStatusExpired:   true,
	},
	OrderStatusConfirmed: {},
	OrderStatusCancelled: {},
	OrderStatusExpired:   {},
}

func CanTransitionOrder(from, to OrderStatus) bool {
	return orderTransitions[from][to]
}

// Order is one buyer's attempt to purchase a set of ticket units for one event.
type Order struct {
	ID                   string          `json:"id"`
	BuyerID              string          `json:"buyer_id"`
	EventID              string          `json:"event_id"`
	Status               OrderStatus     `json:"status"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	Commission           decimal.Decimal `json:"commission"`
	VAT                  decimal.Decimal `json:"vat"`
	Total                decimal.Decimal `json:"total"`
	Currency             string          `json:"currency"`
	ReservationExpiresAt time.Time       `json:"reservation_expires_at"`
	ConfirmedAt          *time.Time      `json:"confirmed_at,omitempty"`
	CancelledAt          *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// OrderItem is one line of an order. Immutable once the order is created.
type OrderItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	WaveID    string          `json:"wave_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Currency  string          `json:"currency"`
}

// Selection is a buyer's request for quantity units of a wave at a listed price.
type Selection struct {
	WaveID    string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Totals is the monetary breakdown of an order. Commission is charged on the
// subtotal, VAT is charged on the commission only.
type Totals struct {
	Subtotal   decimal.Decimal
	Commission decimal.Decimal
	VAT        decimal.Decimal
	Total      decimal.Decimal
}

// ComputeTotals derives commission, VAT and total from a subtotal. All values
// are rounded to 2 decimal places, half up.
func ComputeTotals(subtotal, commissionRate, vatRate decimal.Decimal) Totals {
	commission := subtotal.Mul(commissionRate).Round(2)
	vat := commission.Mul(vatRate).Round(2)
	return Totals{
		Subtotal:   subtotal,
		Commission: commission,
		VAT:        vat,
		Total:      subtotal.Add(commission).Add(vat),
	}
}
