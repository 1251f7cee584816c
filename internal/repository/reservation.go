package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/avezhov/ReTicket/internal/domain"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// FindAvailableUnits returns up to quantity unsold units of the wave listed at
// unitPrice. A unit counts as available when it has no reservation that is
// both unreleased and unexpired; lapsed-but-unswept reservations do not block
// the lookup, the claiming transaction releases them before inserting.
func (r *ReservationRepository) FindAvailableUnits(ctx context.Context, waveID string, unitPrice decimal.Decimal, quantity int) ([]domain.TicketUnit, error) {
	query := `SELECT u.id, u.wave_id, u.seller_id, u.price, u.status
			  FROM ticket_units u
			  WHERE u.wave_id = $1
			    AND u.price = $2
			    AND u.status = $3
			    AND NOT EXISTS (
			        SELECT 1 FROM ticket_reservations tr
			        WHERE tr.ticket_unit_id = u.id
			          AND tr.deleted_at IS NULL
			          AND tr.reserved_until > now()
			    )
			  ORDER BY u.id
			  LIMIT $4`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, waveID, unitPrice, domain.TicketUnitAvailable, quantity)
	if err != nil {
		return nil, fmt.Errorf("find available units: %w", err)
	}
	defer rows.Close()

	var res []domain.TicketUnit
	for rows.Next() {
		var u domain.TicketUnit
		if err = rows.Scan(&u.ID, &u.WaveID, &u.SellerID, &u.Price, &u.Status); err != nil {
			return nil, fmt.Errorf("scan ticket unit: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

// ExtendByOrder pushes out reserved_until for the order's active reservations.
func (r *ReservationRepository) ExtendByOrder(ctx context.Context, orderID string, until time.Time) error {
	query := `UPDATE ticket_reservations
			  SET reserved_until = $2
			  WHERE order_id = $1 AND deleted_at IS NULL`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, orderID, until); err != nil {
		return fmt.Errorf("extend reservations: %w", err)
	}
	return nil
}

// cleanupExpiredReservationsTx soft-releases reservations on the given units
// whose window has lapsed. Run inside the claiming transaction immediately
// before the insert, so a conflict after cleanup is real contention between
// two live buyers and not a zombie hold.
func cleanupExpiredReservationsTx(ctx context.Context, tx *sql.Tx, unitIDs []string) error {
	query := `UPDATE ticket_reservations
			  SET deleted_at = now()
			  WHERE ticket_unit_id = ANY($1)
			    AND deleted_at IS NULL
			    AND reserved_until <= now()`
	if _, err := tx.ExecContext(ctx, query, pq.Array(unitIDs)); err != nil {
		return fmt.Errorf("cleanup expired reservations: %w", err)
	}
	return nil
}

// createReservationsTx claims all given reservations or none. The partial
// unique index on (ticket_unit_id) WHERE deleted_at IS NULL rejects any unit
// that still carries an active hold; the violation maps to
// domain.ErrTicketsUnavailable and the caller's transaction rolls back.
func createReservationsTx(ctx context.Context, tx *sql.Tx, reservations []domain.TicketReservation) error {
	query := `INSERT INTO ticket_reservations (id, order_id, ticket_unit_id, reserved_at, reserved_until)
			  VALUES ($1, $2, $3, $4, $5)`
	for _, tr := range reservations {
		if _, err := tx.ExecContext(ctx, query, tr.ID, tr.OrderID, tr.TicketUnitID, tr.ReservedAt, tr.ReservedUntil); err != nil {
			if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
				return domain.ErrTicketsUnavailable
			}
			return fmt.Errorf("insert reservation: %w", err)
		}
	}
	return nil
}

// releaseReservationsTx soft-releases all of an order's active reservations.
func releaseReservationsTx(ctx context.Context, tx *sql.Tx, orderID string) error {
	query := `UPDATE ticket_reservations
			  SET deleted_at = now()
			  WHERE order_id = $1 AND deleted_at IS NULL`
	if _, err := tx.ExecContext(ctx, query, orderID); err != nil {
		return fmt.Errorf("release reservations: %w", err)
	}
	return nil
}

// confirmReservationsTx marks the order's units as sold and soft-deletes the
// reservations. Every reservation of the order must still be active; if a
// lapsed hold was already stolen by another buyer the sale cannot be honored
// and the caller's transaction rolls back with domain.ErrTicketsUnavailable.
func confirmReservationsTx(ctx context.Context, tx *sql.Tx, orderID string) error {
	var total, active int
	countQuery := `SELECT COUNT(*), COUNT(*) FILTER (WHERE deleted_at IS NULL)
				   FROM ticket_reservations
				   WHERE order_id = $1`
	if err := tx.QueryRowContext(ctx, countQuery, orderID).Scan(&total, &active); err != nil {
		return fmt.Errorf("count reservations: %w", err)
	}
	if active < total {
		return domain.ErrTicketsUnavailable
	}

	sellQuery := `UPDATE ticket_units
				  SET status = $2, sold_at = now()
				  WHERE id IN (
				      SELECT ticket_unit_id FROM ticket_reservations
				      WHERE order_id = $1 AND deleted_at IS NULL
				  )`
	if _, err := tx.ExecContext(ctx, sellQuery, orderID, domain.TicketUnitSold); err != nil {
		return fmt.Errorf("mark units sold: %w", err)
	}

	return releaseReservationsTx(ctx, tx, orderID)
}
