package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/avezhov/ReTicket/internal/domain"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, starts_at, ends_at FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(&e.ID, &e.Title, &e.StartsAt, &e.EndsAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) GetWave(ctx context.Context, waveID string) (*domain.TicketWave, error) {
	query := `SELECT id, event_id, name, currency FROM ticket_waves WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, waveID)
	if err != nil {
		return nil, fmt.Errorf("get wave: %w", err)
	}

	var w domain.TicketWave
	if err = row.Scan(&w.ID, &w.EventID, &w.Name, &w.Currency); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWaveNotFound
		}
		return nil, fmt.Errorf("scan wave: %w", err)
	}
	return &w, nil
}

func (r *EventRepository) ListWaves(ctx context.Context, eventID string) ([]domain.TicketWave, error) {
	query := `SELECT id, event_id, name, currency FROM ticket_waves
			  WHERE event_id = $1
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list waves: %w", err)
	}
	defer rows.Close()

	var res []domain.TicketWave
	for rows.Next() {
		var w domain.TicketWave
		if err = rows.Scan(&w.ID, &w.EventID, &w.Name, &w.Currency); err != nil {
			return nil, fmt.Errorf("scan wave: %w", err)
		}
		res = append(res, w)
	}

	return res, rows.Err()
}
