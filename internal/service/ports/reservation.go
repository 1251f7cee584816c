package ports

import (
	"context"
	"time"

	"github.com/avezhov/ReTicket/internal/domain"
	"github.com/shopspring/decimal"
)

type ReservationRepo interface {
	// FindAvailableUnits returns up to quantity units of a wave listed at
	// unitPrice with no live claim. Units whose reservation has lapsed but
	// has not been swept yet are included; the claiming transaction releases
	// them before inserting its own reservations. A short result means
	// insufficient supply and must be treated as a hard failure.
	FindAvailableUnits(ctx context.Context, waveID string, unitPrice decimal.Decimal, quantity int) ([]domain.TicketUnit, error)

	// ExtendByOrder pushes out reserved_until for all of an order's active
	// reservations, covering the payment window.
	ExtendByOrder(ctx context.Context, orderID string, until time.Time) error
}
