package ports

import (
	"context"

	"github.com/avezhov/ReTicket/internal/domain"
)

type EventRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetWave(ctx context.Context, waveID string) (*domain.TicketWave, error)
	ListWaves(ctx context.Context, eventID string) ([]domain.TicketWave, error)
}
