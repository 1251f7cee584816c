package ports

import (
	"context"
	"time"

	"github.com/avezhov/ReTicket/internal/domain"
)

type OrderRepo interface {
	// Create inserts the order, its items and its reservations in one
	// transaction, soft-releasing expired reservations on the claimed units
	// first. Returns domain.ErrTicketsUnavailable when any unit already has
	// an active reservation.
	Create(ctx context.Context, o *domain.Order, items []domain.OrderItem, reservations []domain.TicketReservation) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetPendingByBuyerAndEvent(ctx context.Context, buyerID, eventID string) (*domain.Order, error)
	ListPending(ctx context.Context) ([]*domain.Order, error)
	ExtendWindow(ctx context.Context, orderID string, until time.Time) error

	// Terminal transitions. Invoked only by the reconciliation engine and
	// the scheduler; each is one atomic transaction over the order, its
	// reservations and, for Confirm, the sold ticket units.
	Confirm(ctx context.Context, orderID string) error
	Cancel(ctx context.Context, orderID string) error
	Expire(ctx context.Context, orderID string) error
}
