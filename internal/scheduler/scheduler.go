package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/avezhov/ReTicket/internal/domain"
)

type paymentSyncer interface {
	SyncStalePayments(ctx context.Context) error
}

type orderExpirer interface {
	ExpireStaleOrders(ctx context.Context) ([]*domain.Order, error)
}

// Scheduler is the reliability backstop for the webhook path: on a fixed
// interval it polls stale payments through the reconciliation engine, then
// expires pending orders whose payments all ended in failure.
type Scheduler struct {
	payments paymentSyncer
	orders   orderExpirer
	interval time.Duration
	logger   logger.Logger
}

func New(
	payments paymentSyncer,
	orders orderExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		payments: payments,
		orders:   orders,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs both phases. A failure in one phase never skips the other.
func (s *Scheduler) tick(ctx context.Context) {
	if err := s.payments.SyncStalePayments(ctx); err != nil {
		s.logger.Error("payment sync failed",
			logger.String("error", err.Error()),
		)
	}

	expired, err := s.orders.ExpireStaleOrders(ctx)
	if err != nil {
		s.logger.Error("order expiry sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, o := range expired {
		s.logger.Info("stale order expired",
			logger.String("order_id", o.ID),
			logger.String("buyer_id", o.BuyerID),
			logger.String("event_id", o.EventID),
		)
	}
}
