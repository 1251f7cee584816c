package ports

import (
	"context"
	"time"

	"github.com/avezhov/ReTicket/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	// GetByProviderID looks a payment up by its reconciliation idempotency
	// key (provider, provider payment id).
	GetByProviderID(ctx context.Context, provider, providerPaymentID string) (*domain.Payment, error)
	// UpdateSnapshot persists the payment unconditionally; every
	// reconciliation pass updates the row even when the status is unchanged.
	UpdateSnapshot(ctx context.Context, p *domain.Payment) error
	AppendEvent(ctx context.Context, e *domain.PaymentEvent) error
	ListByOrder(ctx context.Context, orderID string) ([]*domain.Payment, error)
	// ListStalePending returns pending/processing payments created before
	// cutoff, oldest first, up to limit.
	ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*domain.Payment, error)
	// GetActiveLink returns the newest non-terminal payment of the order
	// that still carries a redirect URL, or domain.ErrPaymentNotFound.
	GetActiveLink(ctx context.Context, orderID string) (*domain.Payment, error)
}
