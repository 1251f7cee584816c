// Package provider holds the payment-provider registry and concrete adapters.
package provider

import (
	"fmt"

	"github.com/avezhov/ReTicket/internal/domain"
	"github.com/avezhov/ReTicket/internal/service/ports"
)

// Registry resolves provider adapters by identifier. Built once at startup
// and injected wherever provider access is needed; there is no process-wide
// default.
type Registry struct {
	providers map[string]ports.PaymentProvider
}

func NewRegistry(providers ...ports.PaymentProvider) *Registry {
	m := make(map[string]ports.PaymentProvider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

func (r *Registry) Get(name string) (ports.PaymentProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, name)
	}
	return p, nil
}
