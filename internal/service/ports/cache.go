package ports

import (
	"context"

	"github.com/avezhov/ReTicket/internal/domain"
)

// LinkCache is a best-effort cache of pending checkout links keyed by order.
// A miss returns (nil, nil); the payments table stays the source of truth.
type LinkCache interface {
	Get(ctx context.Context, orderID string) (*domain.PaymentLink, error)
	Set(ctx context.Context, orderID string, link *domain.PaymentLink) error
}
