package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/avezhov/ReTicket/internal/domain"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const paymentColumns = `id, order_id, provider, provider_payment_id, status, amount, currency,
payer_email, rejection_reason, redirect_url, provider_metadata,
approved_at, failed_at, cancelled_at, expired_at, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	var p domain.Payment
	var payerEmail, rejectionReason, redirectURL sql.NullString
	var metadata []byte
	err := row.Scan(
		&p.ID, &p.OrderID, &p.Provider, &p.ProviderPaymentID, &p.Status,
		&p.Amount, &p.Currency,
		&payerEmail, &rejectionReason, &redirectURL, &metadata,
		&p.ApprovedAt, &p.FailedAt, &p.CancelledAt, &p.ExpiredAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PayerEmail = payerEmail.String
	p.RejectionReason = rejectionReason.String
	p.RedirectURL = redirectURL.String
	p.ProviderMetadata = metadata
	return &p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (` + paymentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		p.ID, p.OrderID, p.Provider, p.ProviderPaymentID, p.Status,
		p.Amount, p.Currency,
		nullable(p.PayerEmail), nullable(p.RejectionReason), nullable(p.RedirectURL),
		[]byte(p.ProviderMetadata),
		p.ApprovedAt, p.FailedAt, p.CancelledAt, p.ExpiredAt,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("payment %s/%s already recorded: %w", p.Provider, p.ProviderPaymentID, err)
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) GetByProviderID(ctx context.Context, provider, providerPaymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
			  WHERE provider = $1 AND provider_payment_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, provider, providerPaymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}

// UpdateSnapshot overwrites the mutable part of the payment row. Called on
// every reconciliation pass whether or not the status changed.
func (r *PaymentRepository) UpdateSnapshot(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments
			  SET status = $2, payer_email = $3, rejection_reason = $4,
			      provider_metadata = $5, approved_at = $6, failed_at = $7,
			      cancelled_at = $8, expired_at = $9, updated_at = $10
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		p.ID, p.Status,
		nullable(p.PayerEmail), nullable(p.RejectionReason),
		[]byte(p.ProviderMetadata),
		p.ApprovedAt, p.FailedAt, p.CancelledAt, p.ExpiredAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepository) AppendEvent(ctx context.Context, e *domain.PaymentEvent) error {
	query := `INSERT INTO payment_events (id, payment_id, kind, status, detail, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		e.ID, e.PaymentID, e.Kind, e.Status, nullable(e.Detail), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append payment event: %w", err)
	}
	return nil
}

func (r *PaymentRepository) ListByOrder(ctx context.Context, orderID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
			  WHERE order_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list payments by order: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *PaymentRepository) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
			  WHERE status = ANY($1) AND created_at < $2
			  ORDER BY created_at
			  LIMIT $3`

	open := []domain.PaymentStatus{domain.PaymentStatusPending, domain.PaymentStatusProcessing}
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(open), cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale payments: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *PaymentRepository) GetActiveLink(ctx context.Context, orderID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
			  WHERE order_id = $1 AND status = ANY($2) AND redirect_url IS NOT NULL
			  ORDER BY created_at DESC
			  LIMIT 1`

	open := []domain.PaymentStatus{domain.PaymentStatusPending, domain.PaymentStatusProcessing}
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, orderID, pq.Array(open))
	if err != nil {
		return nil, fmt.Errorf("get active payment link: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}

func collectPayments(rows *sql.Rows) ([]*domain.Payment, error) {
	var res []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
