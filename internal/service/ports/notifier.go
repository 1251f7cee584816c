package ports

import (
	"context"

	"github.com/avezhov/ReTicket/internal/domain"
)

// Notifier delivers buyer-facing notifications. Fire-and-forget: calls never
// block or fail the core flow.
type Notifier interface {
	NotifyOrderConfirmed(ctx context.Context, o *domain.Order)
	NotifyPaymentFailed(ctx context.Context, o *domain.Order, p *domain.Payment)
	NotifyOrderExpired(ctx context.Context, o *domain.Order)
}
