package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/avezhov/ReTicket/internal/domain"
	"github.com/avezhov/ReTicket/internal/service/ports"
)

// CheckoutConfig carries the purchase-flow knobs.
type CheckoutConfig struct {
	ReservationTTL  time.Duration
	PaymentWindow   time.Duration
	MaxTickets      int
	CommissionRate  decimal.Decimal
	VATRate         decimal.Decimal
	Provider        string
	SuccessURL      string
	BackURL         string
	NotificationURL string
}

type OrderService struct {
	orders       ports.OrderRepo
	reservations ports.ReservationRepo
	events       ports.EventRepo
	payments     ports.PaymentRepo
	providers    ports.ProviderRegistry
	links        ports.LinkCache
	notifier     ports.Notifier
	cfg          CheckoutConfig
	logger       logger.Logger
}

func NewOrderService(
	orders ports.OrderRepo,
	reservations ports.ReservationRepo,
	events ports.EventRepo,
	payments ports.PaymentRepo,
	providers ports.ProviderRegistry,
	links ports.LinkCache,
	notifier ports.Notifier,
	cfg CheckoutConfig,
	logger logger.Logger,
) *OrderService {
	return &OrderService{
		orders:       orders,
		reservations: reservations,
		events:       events,
		payments:     payments,
		providers:    providers,
		links:        links,
		notifier:     notifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// CreateOrder validates the buyer's selections, claims the ticket units and
// inserts order, items and reservations in one transaction. When the buyer
// already has a pending order for the event it is returned with resumed=true
// so the client can pick the existing checkout back up.
func (s *OrderService) CreateOrder(ctx context.Context, buyerID, eventID string, selections []domain.Selection) (o *domain.Order, resumed bool, err error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, false, fmt.Errorf("check event: %w", err)
	}

	now := time.Now().UTC()
	if event.Finished(now) {
		return nil, false, domain.ErrEventFinished
	}

	existing, err := s.orders.GetPendingByBuyerAndEvent(ctx, buyerID, eventID)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, domain.ErrOrderNotFound) {
		return nil, false, fmt.Errorf("check pending order: %w", err)
	}

	if err = s.validateSelections(selections); err != nil {
		return nil, false, err
	}

	orderID := uuid.New().String()
	reservedUntil := now.Add(s.cfg.ReservationTTL)

	var (
		currency     string
		subtotal     decimal.Decimal
		items        []domain.OrderItem
		reservations []domain.TicketReservation
	)
	for _, sel := range selections {
		wave, err := s.events.GetWave(ctx, sel.WaveID)
		if err != nil {
			return nil, false, fmt.Errorf("check wave: %w", err)
		}
		if wave.EventID != eventID {
			return nil, false, fmt.Errorf("%w: wave %s does not belong to event %s", domain.ErrWaveNotFound, sel.WaveID, eventID)
		}
		if currency == "" {
			currency = wave.Currency
		} else if currency != wave.Currency {
			return nil, false, domain.ErrMixedCurrencies
		}

		units, err := s.reservations.FindAvailableUnits(ctx, sel.WaveID, sel.UnitPrice, sel.Quantity)
		if err != nil {
			return nil, false, fmt.Errorf("find units: %w", err)
		}
		if len(units) < sel.Quantity {
			return nil, false, fmt.Errorf("%w: wave %s has %d of %d requested", domain.ErrInsufficientTickets, sel.WaveID, len(units), sel.Quantity)
		}
		for _, u := range units {
			if u.SellerID == buyerID {
				return nil, false, domain.ErrSelfPurchase
			}
			reservations = append(reservations, domain.TicketReservation{
				ID:            uuid.New().String(),
				OrderID:       orderID,
				TicketUnitID:  u.ID,
				ReservedAt:    now,
				ReservedUntil: reservedUntil,
			})
		}

		lineSubtotal := sel.UnitPrice.Mul(decimal.NewFromInt(int64(sel.Quantity)))
		subtotal = subtotal.Add(lineSubtotal)
		items = append(items, domain.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			WaveID:    sel.WaveID,
			UnitPrice: sel.UnitPrice,
			Quantity:  sel.Quantity,
			Subtotal:  lineSubtotal,
			Currency:  wave.Currency,
		})
	}

	totals := domain.ComputeTotals(subtotal, s.cfg.CommissionRate, s.cfg.VATRate)
	order := &domain.Order{
		ID:                   orderID,
		BuyerID:              buyerID,
		EventID:              eventID,
		Status:               domain.OrderStatusPending,
		Subtotal:             totals.Subtotal,
		Commission:           totals.Commission,
		VAT:                  totals.VAT,
		Total:                totals.Total,
		Currency:             currency,
		ReservationExpiresAt: reservedUntil,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err = s.orders.Create(ctx, order, items, reservations); err != nil {
		return nil, false, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created",
		logger.String("order_id", order.ID),
		logger.String("buyer_id", buyerID),
		logger.String("event_id", eventID),
		logger.Int("tickets", len(reservations)),
		logger.String("total", order.Total.String()),
	)

	return order, false, nil
}

func (s *OrderService) validateSelections(selections []domain.Selection) error {
	if len(selections) == 0 {
		return domain.ErrInvalidQuantity
	}
	total := 0
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}
		total += sel.Quantity
	}
	if total > s.cfg.MaxTickets {
		return fmt.Errorf("%w: %d requested, limit %d", domain.ErrTooManyTickets, total, s.cfg.MaxTickets)
	}
	return nil
}

// RequestPaymentWindow hands the buyer off to the payment provider. While a
// payment attempt is still in flight its link is reused, so calling this
// twice never creates divergent payments; otherwise a new provider payment is
// opened and the reservation window is extended to cover it.
func (s *OrderService) RequestPaymentWindow(ctx context.Context, orderID, buyerID string) (*domain.PaymentLink, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.BuyerID != buyerID {
		return nil, domain.ErrOrderNotFound
	}
	if order.Status != domain.OrderStatusPending {
		return nil, domain.ErrOrderNotPending
	}

	now := time.Now().UTC()
	if !order.ReservationExpiresAt.After(now) {
		return nil, domain.ErrOrderExpired
	}

	if link, err := s.links.Get(ctx, orderID); err != nil {
		s.logger.Error("link cache get failed",
			logger.String("order_id", orderID),
			logger.String("error", err.Error()),
		)
	} else if link != nil && link.ExpiresAt.After(now) {
		return link, nil
	}

	if p, err := s.payments.GetActiveLink(ctx, orderID); err == nil {
		return s.cacheLink(ctx, p, order.ReservationExpiresAt), nil
	} else if !errors.Is(err, domain.ErrPaymentNotFound) {
		return nil, fmt.Errorf("get active link: %w", err)
	}

	prov, err := s.providers.Get(s.cfg.Provider)
	if err != nil {
		return nil, err
	}

	created, err := prov.CreatePayment(ctx, domain.CreatePaymentInput{
		OrderID:           order.ID,
		Amount:            order.Total,
		Currency:          order.Currency,
		Description:       fmt.Sprintf("resale order %s", order.ID),
		SuccessURL:        s.cfg.SuccessURL,
		BackURL:           s.cfg.BackURL,
		NotificationURL:   s.cfg.NotificationURL,
		ExpirationMinutes: int(s.cfg.PaymentWindow.Minutes()),
	})
	if err != nil {
		return nil, fmt.Errorf("create provider payment: %w", err)
	}

	payment := &domain.Payment{
		ID:                uuid.New().String(),
		OrderID:           order.ID,
		Provider:          prov.Name(),
		ProviderPaymentID: created.ID,
		Status:            created.Status,
		Amount:            order.Total,
		Currency:          order.Currency,
		RedirectURL:       created.RedirectURL,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err = s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	until := now.Add(s.cfg.PaymentWindow)
	if err = s.reservations.ExtendByOrder(ctx, orderID, until); err != nil {
		return nil, fmt.Errorf("extend reservations: %w", err)
	}
	if err = s.orders.ExtendWindow(ctx, orderID, until); err != nil {
		return nil, fmt.Errorf("extend order window: %w", err)
	}

	s.logger.Info("payment window opened",
		logger.String("order_id", order.ID),
		logger.String("payment_id", payment.ID),
		logger.String("provider", payment.Provider),
	)

	return s.cacheLink(ctx, payment, until), nil
}

func (s *OrderService) cacheLink(ctx context.Context, p *domain.Payment, expiresAt time.Time) *domain.PaymentLink {
	link := &domain.PaymentLink{
		PaymentID:   p.ID,
		Provider:    p.Provider,
		RedirectURL: p.RedirectURL,
		ExpiresAt:   expiresAt,
	}
	if err := s.links.Set(ctx, p.OrderID, link); err != nil {
		s.logger.Error("link cache set failed",
			logger.String("order_id", p.OrderID),
			logger.String("error", err.Error()),
		)
	}
	return link
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, orderID)
}

func (s *OrderService) ListWaves(ctx context.Context, eventID string) ([]domain.TicketWave, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	return s.events.ListWaves(ctx, eventID)
}

// ExpireStaleOrders is scheduler phase 2: expire pending orders whose every
// payment ended in a terminal failure. It is driven by provider truth, not by
// the reservation clock — an order with a payment still in flight is left
// alone even if its local window lapsed, and orders with no payments at all
// are skipped because the buyer never reached checkout.
func (s *OrderService) ExpireStaleOrders(ctx context.Context) ([]*domain.Order, error) {
	pending, err := s.orders.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	var expired []*domain.Order
	for _, order := range pending {
		payments, err := s.payments.ListByOrder(ctx, order.ID)
		if err != nil {
			s.logger.Error("failed to load payments for expiry sweep",
				logger.String("order_id", order.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !allFailed(payments) {
			continue
		}

		if err = s.orders.Expire(ctx, order.ID); err != nil {
			if errors.Is(err, domain.ErrOrderAlreadyExpired) {
				continue
			}
			s.logger.Error("failed to expire order",
				logger.String("order_id", order.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.logger.Info("order expired",
			logger.String("order_id", order.ID),
			logger.String("buyer_id", order.BuyerID),
		)
		expired = append(expired, order)
		go s.notifier.NotifyOrderExpired(context.WithoutCancel(ctx), order)
	}

	return expired, nil
}

func allFailed(payments []*domain.Payment) bool {
	if len(payments) == 0 {
		return false
	}
	for _, p := range payments {
		if !p.Status.FailedTerminal() {
			return false
		}
	}
	return true
}
