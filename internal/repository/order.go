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

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const orderColumns = `id, buyer_id, event_id, status, subtotal, commission, vat, total,
currency, reservation_expires_at, confirmed_at, cancelled_at, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.BuyerID, &o.EventID, &o.Status,
		&o.Subtotal, &o.Commission, &o.VAT, &o.Total,
		&o.Currency, &o.ReservationExpiresAt,
		&o.ConfirmedAt, &o.CancelledAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts the order, its items and its reservations in one
// transaction. Expired holds on the claimed units are released first, so a
// uniqueness violation on insert is genuine contention with a live buyer.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order, items []domain.OrderItem, reservations []domain.TicketReservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	unitIDs := make([]string, 0, len(reservations))
	for _, tr := range reservations {
		unitIDs = append(unitIDs, tr.TicketUnitID)
	}
	if err = cleanupExpiredReservationsTx(ctx, tx, unitIDs); err != nil {
		return err
	}

	orderQuery := `INSERT INTO orders (` + orderColumns + `)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(ctx, orderQuery,
		o.ID, o.BuyerID, o.EventID, o.Status,
		o.Subtotal, o.Commission, o.VAT, o.Total,
		o.Currency, o.ReservationExpiresAt,
		o.ConfirmedAt, o.CancelledAt, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `INSERT INTO order_items (id, order_id, wave_id, unit_price, quantity, subtotal, currency)
				  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, it := range items {
		if _, err = tx.ExecContext(ctx, itemQuery,
			it.ID, it.OrderID, it.WaveID, it.UnitPrice, it.Quantity, it.Subtotal, it.Currency,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err = createReservationsTx(ctx, tx, reservations); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) GetPendingByBuyerAndEvent(ctx context.Context, buyerID, eventID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
			  WHERE buyer_id = $1 AND event_id = $2 AND status = $3
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, buyerID, eventID, domain.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("get pending order: %w", err)
	}

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) ListPending(ctx context.Context) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
			  WHERE status = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, o)
	}

	return res, rows.Err()
}

func (r *OrderRepository) ExtendWindow(ctx context.Context, orderID string, until time.Time) error {
	query := `UPDATE orders
			  SET reservation_expires_at = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, orderID, until, domain.OrderStatusPending)
	if err != nil {
		return fmt.Errorf("extend order window: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("order rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrOrderNotPending
	}
	return nil
}

// Confirm transitions a pending order to confirmed and sells its reserved
// units, atomically. Re-confirming a confirmed order returns
// domain.ErrOrderAlreadyConfirmed so callers can treat it as a no-op.
func (r *OrderRepository) Confirm(ctx context.Context, orderID string) error {
	return r.terminal(ctx, orderID, domain.OrderStatusConfirmed,
		`UPDATE orders SET status = $2, confirmed_at = now(), updated_at = now()
		 WHERE id = $1 AND status = $3`,
		confirmReservationsTx,
	)
}

// Cancel transitions a pending order to cancelled and releases its
// reservations, atomically.
func (r *OrderRepository) Cancel(ctx context.Context, orderID string) error {
	return r.terminal(ctx, orderID, domain.OrderStatusCancelled,
		`UPDATE orders SET status = $2, cancelled_at = now(), updated_at = now()
		 WHERE id = $1 AND status = $3`,
		releaseReservationsTx,
	)
}

// Expire transitions a pending order to expired and releases its
// reservations, atomically.
func (r *OrderRepository) Expire(ctx context.Context, orderID string) error {
	return r.terminal(ctx, orderID, domain.OrderStatusExpired,
		`UPDATE orders SET status = $2, updated_at = now()
		 WHERE id = $1 AND status = $3`,
		releaseReservationsTx,
	)
}

func (r *OrderRepository) terminal(
	ctx context.Context,
	orderID string,
	to domain.OrderStatus,
	query string,
	reservations func(context.Context, *sql.Tx, string) error,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, orderID, to, domain.OrderStatusPending)
	if err != nil {
		return fmt.Errorf("transition order: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("order rows affected: %w", err)
	}
	if rows == 0 {
		return r.diagnoseTerminal(ctx, tx, orderID)
	}

	if err = reservations(ctx, tx, orderID); err != nil {
		return err
	}

	return tx.Commit()
}

// diagnoseTerminal explains why a status-guarded transition touched no rows.
func (r *OrderRepository) diagnoseTerminal(ctx context.Context, tx *sql.Tx, orderID string) error {
	var status domain.OrderStatus
	if err := tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1`, orderID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("get order status: %w", err)
	}

	switch status {
	case domain.OrderStatusConfirmed:
		return domain.ErrOrderAlreadyConfirmed
	case domain.OrderStatusCancelled:
		return domain.ErrOrderAlreadyCancelled
	case domain.OrderStatusExpired:
		return domain.ErrOrderAlreadyExpired
	default:
		return domain.ErrOrderNotPending
	}
}
