package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"

	"github.com/avezhov/ReTicket/internal/domain"
	"github.com/avezhov/ReTicket/internal/service/ports"
)

// ReconcileService is the single chokepoint where provider truth is reflected
// into local state. Webhooks and the scheduler's poll both land here, and two
// passes for the same payment may run concurrently: every pass re-derives
// truth from the provider and terminal transitions are status-guarded, so
// last-write-wins is safe.
type ReconcileService struct {
	payments  ports.PaymentRepo
	orders    ports.OrderRepo
	providers ports.ProviderRegistry
	earnings  ports.EarningsDispatcher
	notifier  ports.Notifier
	minAge    time.Duration
	batchSize int
	logger    logger.Logger
}

func NewReconcileService(
	payments ports.PaymentRepo,
	orders ports.OrderRepo,
	providers ports.ProviderRegistry,
	earnings ports.EarningsDispatcher,
	notifier ports.Notifier,
	minAge time.Duration,
	batchSize int,
	logger logger.Logger,
) *ReconcileService {
	return &ReconcileService{
		payments:  payments,
		orders:    orders,
		providers: providers,
		earnings:  earnings,
		notifier:  notifier,
		minAge:    minAge,
		batchSize: batchSize,
		logger:    logger,
	}
}

// HandleWebhook resolves the provider payment id out of a raw webhook body
// and reconciles it.
func (s *ReconcileService) HandleWebhook(ctx context.Context, providerName string, body []byte) error {
	prov, err := s.providers.Get(providerName)
	if err != nil {
		return err
	}
	providerPaymentID, err := prov.ParseWebhook(body)
	if err != nil {
		return fmt.Errorf("parse webhook: %w", err)
	}
	return s.Reconcile(ctx, providerName, providerPaymentID)
}

// Reconcile fetches the provider's current view of one payment and applies it
// to the payment, its order and the order's reservations. Safe to call any
// number of times with an unchanged provider status.
func (s *ReconcileService) Reconcile(ctx context.Context, providerName, providerPaymentID string) error {
	prov, err := s.providers.Get(providerName)
	if err != nil {
		return err
	}

	payment, err := s.payments.GetByProviderID(ctx, providerName, providerPaymentID)
	if err != nil {
		return fmt.Errorf("lookup payment %s/%s: %w", providerName, providerPaymentID, err)
	}

	order, err := s.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return fmt.Errorf("payment %s references missing order %s: %w", payment.ID, payment.OrderID, err)
		}
		return fmt.Errorf("load order: %w", err)
	}

	// Provider call stays outside any transaction.
	obs, err := prov.GetPayment(ctx, providerPaymentID)
	if err != nil {
		return fmt.Errorf("fetch provider payment: %w", err)
	}

	// Guard against tampered or cross-order replays before touching state.
	if !obs.Amount.Equal(order.Total) || obs.Currency != order.Currency {
		s.logger.Error("payment amount mismatch",
			logger.String("payment_id", payment.ID),
			logger.String("order_id", order.ID),
			logger.String("order_total", order.Total.String()),
			logger.String("order_currency", order.Currency),
			logger.String("observed_amount", obs.Amount.String()),
			logger.String("observed_currency", obs.Currency),
		)
		return fmt.Errorf("%w: payment %s", domain.ErrPaymentAmountMismatch, payment.ID)
	}

	now := time.Now().UTC()
	previous := payment.Status
	payment.ApplyObservation(obs, now)

	if err = s.payments.UpdateSnapshot(ctx, payment); err != nil {
		return fmt.Errorf("persist payment snapshot: %w", err)
	}
	s.appendEvent(ctx, payment, domain.PaymentEventObservation, string(obs.Status))
	if obs.Status != previous {
		s.appendEvent(ctx, payment, domain.PaymentEventStatusChange,
			fmt.Sprintf("%s -> %s", previous, obs.Status))
	}

	switch obs.Status {
	case domain.PaymentStatusPaid:
		return s.applyPaid(ctx, order, payment)
	case domain.PaymentStatusFailed, domain.PaymentStatusCancelled, domain.PaymentStatusExpired:
		return s.applyFailed(ctx, order, payment)
	case domain.PaymentStatusPending, domain.PaymentStatusProcessing:
		return nil
	default:
		// Refund handling lives downstream of a confirmed sale; nothing for
		// the reservation side to do. Anything else is logged and skipped.
		s.logger.Warn("no order transition for payment status",
			logger.String("payment_id", payment.ID),
			logger.String("status", string(obs.Status)),
		)
		return nil
	}
}

func (s *ReconcileService) applyPaid(ctx context.Context, order *domain.Order, payment *domain.Payment) error {
	err := s.orders.Confirm(ctx, order.ID)
	switch {
	case errors.Is(err, domain.ErrOrderAlreadyConfirmed):
		// Replayed observation; the sale and its earnings were already
		// dispatched by the pass that won.
		return nil
	case errors.Is(err, domain.ErrOrderAlreadyExpired),
		errors.Is(err, domain.ErrOrderAlreadyCancelled):
		// Money was captured but the order reached a terminal failure state
		// first. Nothing here can undo either side; flag it for a manual
		// refund and acknowledge so the provider stops redelivering.
		s.logger.Error("paid payment for terminally closed order, refund required",
			logger.String("order_id", order.ID),
			logger.String("order_status", string(order.Status)),
			logger.String("payment_id", payment.ID),
			logger.String("amount", payment.Amount.String()),
		)
		return nil
	case err != nil:
		return fmt.Errorf("confirm order %s: %w", order.ID, err)
	}

	s.logger.Info("order confirmed",
		logger.String("order_id", order.ID),
		logger.String("payment_id", payment.ID),
		logger.String("total", order.Total.String()),
	)

	// Downstream calls happen after the transaction committed; their
	// failures are logged, never rolled back into the sale.
	if err = s.earnings.OrderConfirmed(ctx, order); err != nil {
		s.logger.Error("earnings dispatch failed",
			logger.String("order_id", order.ID),
			logger.String("error", err.Error()),
		)
	}
	go s.notifier.NotifyOrderConfirmed(context.WithoutCancel(ctx), order)

	return nil
}

func (s *ReconcileService) applyFailed(ctx context.Context, order *domain.Order, payment *domain.Payment) error {
	err := s.orders.Cancel(ctx, order.ID)
	switch {
	case errors.Is(err, domain.ErrOrderAlreadyCancelled),
		errors.Is(err, domain.ErrOrderAlreadyExpired):
		return nil
	case errors.Is(err, domain.ErrOrderAlreadyConfirmed):
		// Another payment attempt won; this one failing is irrelevant.
		return nil
	case err != nil:
		return fmt.Errorf("cancel order %s: %w", order.ID, err)
	}

	s.logger.Info("order cancelled",
		logger.String("order_id", order.ID),
		logger.String("payment_id", payment.ID),
		logger.String("payment_status", string(payment.Status)),
	)
	go s.notifier.NotifyPaymentFailed(context.WithoutCancel(ctx), order, payment)

	return nil
}

func (s *ReconcileService) appendEvent(ctx context.Context, p *domain.Payment, kind domain.PaymentEventKind, detail string) {
	e := &domain.PaymentEvent{
		ID:        uuid.New().String(),
		PaymentID: p.ID,
		Kind:      kind,
		Status:    p.Status,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
	// Audit records never fail the pass.
	if err := s.payments.AppendEvent(ctx, e); err != nil {
		s.logger.Error("failed to append payment event",
			logger.String("payment_id", p.ID),
			logger.String("kind", string(kind)),
			logger.String("error", err.Error()),
		)
	}
}

// SyncStalePayments is scheduler phase 1: poll payments stuck in
// pending/processing past the minimum age, in a bounded concurrent batch.
// Individual failures are logged and never abort the batch.
func (s *ReconcileService) SyncStalePayments(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-s.minAge)
	stale, err := s.payments.ListStalePending(ctx, cutoff, s.batchSize)
	if err != nil {
		return fmt.Errorf("list stale payments: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	s.logger.Info("syncing stale payments", logger.Int("count", len(stale)))

	g := new(errgroup.Group)
	g.SetLimit(s.batchSize)
	for _, p := range stale {
		g.Go(func() error {
			if err := s.Reconcile(ctx, p.Provider, p.ProviderPaymentID); err != nil {
				s.logger.Error("stale payment sync failed",
					logger.String("payment_id", p.ID),
					logger.String("provider", p.Provider),
					logger.String("error", err.Error()),
				)
			}
			return nil
		})
	}
	return g.Wait()
}
