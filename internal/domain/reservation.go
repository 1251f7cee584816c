package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TicketReservation binds one physical ticket unit to one order for a bounded
// time window. At most one non-released reservation may exist per ticket unit
// at any instant; the storage layer enforces this with a partial unique index.
type TicketReservation struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"order_id"`
	TicketUnitID string     `json:"ticket_unit_id"`
	ReservedAt   time.Time  `json:"reserved_at"`
	ReservedUntil time.Time `json:"reserved_until"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Active reports whether the reservation still blocks other claims on its
// unit. Expired reservations stay active until soft-released by a cleanup
// pass; callers that care about expiry must check ReservedUntil themselves.
func (r TicketReservation) Active() bool {
	return r.DeletedAt == nil
}

type TicketUnitStatus string

const (
	TicketUnitAvailable TicketUnitStatus = "available"
	TicketUnitSold      TicketUnitStatus = "sold"
)

// TicketUnit is one physical resale ticket listed by a seller.
type TicketUnit struct {
	ID       string           `json:"id"`
	WaveID   string           `json:"wave_id"`
	SellerID string           `json:"seller_id"`
	Price    decimal.Decimal  `json:"price"`
	Status   TicketUnitStatus `json:"status"`
	SoldAt   *time.Time       `json:"sold_at,omitempty"`
}

// TicketWave is a pricing tier of an event under which units are listed.
type TicketWave struct {
	ID       string `json:"id"`
	EventID  string `json:"event_id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// Event is the ticketed happening orders are placed against.
type Event struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt  time.Time `json:"ends_at"`
}

// Finished reports whether the event is over and can no longer be purchased.
func (e Event) Finished(now time.Time) bool {
	return !e.EndsAt.After(now)
}
