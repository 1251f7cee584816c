package ports

import (
	"context"

	"github.com/avezhov/ReTicket/internal/domain"
)

// EarningsDispatcher hands a confirmed order to the downstream seller-earnings
// workflow. Delivery is at-least-once: the engine dispatches at most one
// logical event per confirmation, but redelivery is possible, so the consumer
// must deduplicate by order id. Failures are logged by the caller, never
// retried inline, and never roll back the sale.
type EarningsDispatcher interface {
	OrderConfirmed(ctx context.Context, o *domain.Order) error
}
