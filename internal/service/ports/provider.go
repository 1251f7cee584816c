package ports

import (
	"context"

	"github.com/avezhov/ReTicket/internal/domain"
)

// PaymentProvider wraps one external payment processor behind a uniform
// contract. Adapters own their status-mapping table; the mapping must be
// total, with unknown provider statuses defaulting to pending. Transport
// failures surface as domain.ErrProviderUnavailable, never as a status.
type PaymentProvider interface {
	Name() string
	CreatePayment(ctx context.Context, in domain.CreatePaymentInput) (*domain.CreatedPayment, error)
	GetPayment(ctx context.Context, providerPaymentID string) (*domain.ProviderPayment, error)
	// ParseWebhook extracts the provider payment id from a webhook body.
	ParseWebhook(body []byte) (string, error)
}

// ProviderRegistry resolves a provider adapter by identifier. Injected
// explicitly wherever provider access is needed.
type ProviderRegistry interface {
	Get(name string) (PaymentProvider, error)
}
