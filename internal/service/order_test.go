package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/avezhov/ReTicket/internal/domain"
	"github.com/avezhov/ReTicket/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type orderServiceMocks struct {
	orders       *mocks.MockOrderRepo
	reservations *mocks.MockReservationRepo
	events       *mocks.MockEventRepo
	payments     *mocks.MockPaymentRepo
	providers    *mocks.MockProviderRegistry
	links        *mocks.MockLinkCache
	notifier     *mocks.MockNotifier
}

func newOrderService(t *testing.T) (*OrderService, orderServiceMocks) {
	t.Helper()
	m := orderServiceMocks{
		orders:       mocks.NewMockOrderRepo(t),
		reservations: mocks.NewMockReservationRepo(t),
		events:       mocks.NewMockEventRepo(t),
		payments:     mocks.NewMockPaymentRepo(t),
		providers:    mocks.NewMockProviderRegistry(t),
		links:        mocks.NewMockLinkCache(t),
		notifier:     mocks.NewMockNotifier(t),
	}
	cfg := CheckoutConfig{
		ReservationTTL: 10 * time.Minute,
		PaymentWindow:  5 * time.Minute,
		MaxTickets:     10,
		CommissionRate: decimal.RequireFromString("0.06"),
		VATRate:        decimal.RequireFromString("0.22"),
		Provider:       "yookassa",
		SuccessURL:     "https://shop.test/orders",
		BackURL:        "https://shop.test/orders",
	}
	svc := NewOrderService(m.orders, m.reservations, m.events, m.payments, m.providers, m.links, m.notifier, cfg, newTestLogger(t))
	return svc, m
}

func upcomingEvent() *domain.Event {
	return &domain.Event{
		ID:       "e1",
		Title:    "Stadium Night",
		StartsAt: time.Now().Add(24 * time.Hour),
		EndsAt:   time.Now().Add(28 * time.Hour),
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	svc, m := newOrderService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	m.orders.EXPECT().GetPendingByBuyerAndEvent(mock.Anything, "buyer", "e1").Return(nil, domain.ErrOrderNotFound)
	m.events.EXPECT().GetWave(mock.Anything, "w1").Return(&domain.TicketWave{ID: "w1", EventID: "e1", Name: "GA", Currency: "UYU"}, nil)
	m.reservations.EXPECT().FindAvailableUnits(mock.Anything, "w1", mock.Anything, 2).Return([]domain.TicketUnit{
		{ID: "u1", WaveID: "w1", SellerID: "seller-a"},
		{ID: "u2", WaveID: "w1", SellerID: "seller-b"},
	}, nil)

	var created *domain.Order
	m.orders.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, o *domain.Order, items []domain.OrderItem, reservations []domain.TicketReservation) {
			created = o
			require.Len(t, items, 1)
			require.Len(t, reservations, 2)
			assert.Equal(t, o.ID, reservations[0].OrderID)
			assert.Equal(t, "u1", reservations[0].TicketUnitID)
		}).
		Return(nil)

	order, resumed, err := svc.CreateOrder(context.Background(), "buyer", "e1", []domain.Selection{
		{WaveID: "w1", UnitPrice: decimal.RequireFromString("100"), Quantity: 2},
	})

	require.NoError(t, err)
	assert.False(t, resumed)
	assert.Equal(t, created, order)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "UYU", order.Currency)
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("200")), "subtotal %s", order.Subtotal)
	assert.True(t, order.Commission.Equal(decimal.RequireFromString("12")), "commission %s", order.Commission)
	assert.True(t, order.VAT.Equal(decimal.RequireFromString("2.64")), "vat %s", order.VAT)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("214.64")), "total %s", order.Total)
}

func TestOrderService_CreateOrder_ResumesPending(t *testing.T) {
	svc, m := newOrderService(t)

	existing := &domain.Order{ID: "o1", BuyerID: "buyer", EventID: "e1", Status: domain.OrderStatusPending}
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	m.orders.EXPECT().GetPendingByBuyerAndEvent(mock.Anything, "buyer", "e1").Return(existing, nil)

	order, resumed, err := svc.CreateOrder(context.Background(), "buyer", "e1", []domain.Selection{
		{WaveID: "w1", UnitPrice: decimal.RequireFromString("100"), Quantity: 1},
	})

	require.NoError(t, err)
	assert.True(t, resumed)
	assert.Equal(t, existing, order)
}

func TestOrderService_CreateOrder_EventFinished(t *testing.T) {
	svc, m := newOrderService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID:       "e1",
		StartsAt: time.Now().Add(-5 * time.Hour),
		EndsAt:   time.Now().Add(-time.Hour),
	}, nil)

	_, _, err := svc.CreateOrder(context.Background(), "buyer", "e1", []domain.Selection{
		{WaveID: "w1", UnitPrice: decimal.RequireFromString("100"), Quantity: 1},
	})

	assert.ErrorIs(t, err, domain.ErrEventFinished)
}

func TestOrderService_CreateOrder_MixedCurrencies(t *testing.T) {
	svc, m := newOrderService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	m.orders.EXPECT().GetPendingByBuyerAndEvent(mock.Anything, "buyer", "e1").Return(nil, domain.ErrOrderNotFound)
	m.events.EXPECT().GetWave(mock.Anything, "w1").Return(&domain.TicketWave{ID: "w1", EventID: "e1", Currency: "UYU"}, nil)
	m.events.EXPECT().GetWave(mock.Anything, "w2").Return(&domain.TicketWave{ID: "w2", EventID: "e1", Currency: "USD"}, nil)
	m.reservations.EXPECT().FindAvailableUnits(mock.Anything, "w1", mock.Anything, 1).Return([]domain.TicketUnit{
		{ID: "u1", WaveID: "w1", SellerID: "seller-a"},
	}, nil)

	_, _, err := svc.CreateOrder(context.Background(), "buyer", "e1", []domain.Selection{
		{WaveID: "w1", UnitPrice: decimal.RequireFromString("100"), Quantity: 1},
		{WaveID: "w2", UnitPrice: decimal.RequireFromString("100"), Quantity: 1},
	})

	assert.ErrorIs(t, err, domain.ErrMixedCurrencies)
}

func TestOrderService_CreateOrder_InsufficientTickets(t *testing.T) {
	svc, m := newOrderService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	m.orders.EXPECT().GetPendingByBuyerAndEvent(mock.Anything, "buyer", "e1").Return(nil, domain.ErrOrderNotFound)
	m.events.EXPECT().GetWave(mock.Anything, "w1").Return(&domain.TicketWave{ID: "w1", EventID: "e1", Currency: "UYU"}, nil)
	m.reservations.EXPECT().FindAvailableUnits(mock.Anything, "w1", mock.Anything, 3).Return([]domain.TicketUnit{
		{ID: "u1", WaveID: "w1", SellerID: "seller-a"},
	}, nil)

	_, _, err := svc.CreateOrder(context.Background(), "buyer", "e1", []domain.Selection{
		{WaveID: "w1", UnitPrice: decimal.RequireFromString("100"), Quantity: 3},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientTickets)
}

func TestOrderService_CreateOrder_SelfPurchase(t *testing.T) {
	svc, m := newOrderService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	m.orders.EXPECT().GetPendingByBuyerAndEvent(mock.Anything, "buyer", "e1").Return(nil, domain.ErrOrderNotFound)
	m.events.EXPECT().GetWave(mock.Anything, "w1").Return(&domain.TicketWave{ID: "w1", EventID: "e1", Currency: "UYU"}, nil)
	m.reservations.EXPECT().FindAvailableUnits(mock.Anything, "w1", mock.Anything, 1).Return([]domain.TicketUnit{
		{ID: "u1", WaveID: "w1", SellerID: "buyer"},
	}, nil)

	_, _, err := svc.CreateOrder(context.Background(), "buyer", "e1", []domain.Selection{
		{WaveID: "w1", UnitPrice: decimal.RequireFromString("100"), Quantity: 1},
	})

	assert.ErrorIs(t, err, domain.ErrSelfPurchase)
}

func TestOrderService_CreateOrder_ValidatesQuantities(t *testing.T) {
	svc, m := newOrderService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	m.orders.EXPECT().GetPendingByBuyerAndEvent(mock.Anything, "buyer", "e1").Return(nil, domain.ErrOrderNotFound)

	_, _, err := svc.CreateOrder(context.Background(), "buyer", "e1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	m.orders.EXPECT().GetPendingByBuyerAndEvent(mock.Anything, "buyer", "e1").Return(nil, domain.ErrOrderNotFound)

	_, _, err = svc.CreateOrder(context.Background(), "buyer", "e1", []domain.Selection{
		{WaveID: "w1", UnitPrice: decimal.RequireFromString("10"), Quantity: 11},
	})
	assert.ErrorIs(t, err, domain.ErrTooManyTickets)
}

func TestOrderService_CreateOrder_UnitsContended(t *testing.T) {
	svc, m := newOrderService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	m.orders.EXPECT().GetPendingByBuyerAndEvent(mock.Anything, "buyer", "e1").Return(nil, domain.ErrOrderNotFound)
	m.events.EXPECT().GetWave(mock.Anything, "w1").Return(&domain.TicketWave{ID: "w1", EventID: "e1", Currency: "UYU"}, nil)
	m.reservations.EXPECT().FindAvailableUnits(mock.Anything, "w1", mock.Anything, 1).Return([]domain.TicketUnit{
		{ID: "u1", WaveID: "w1", SellerID: "seller-a"},
	}, nil)
	m.orders.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrTicketsUnavailable)

	_, _, err := svc.CreateOrder(context.Background(), "buyer", "e1", []domain.Selection{
		{WaveID: "w1", UnitPrice: decimal.RequireFromString("100"), Quantity: 1},
	})

	assert.ErrorIs(t, err, domain.ErrTicketsUnavailable)
}

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:                   "o1",
		BuyerID:              "buyer",
		EventID:              "e1",
		Status:               domain.OrderStatusPending,
		Total:                decimal.RequireFromString("214.64"),
		Currency:             "UYU",
		ReservationExpiresAt: time.Now().Add(8 * time.Minute),
	}
}

func TestOrderService_RequestPaymentWindow_CreatesPayment(t *testing.T) {
	svc, m := newOrderService(t)
	provider := mocks.NewMockPaymentProvider(t)

	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(pendingOrder(), nil)
	m.links.EXPECT().Get(mock.Anything, "o1").Return(nil, nil)
	m.payments.EXPECT().GetActiveLink(mock.Anything, "o1").Return(nil, domain.ErrPaymentNotFound)
	m.providers.EXPECT().Get("yookassa").Return(provider, nil)

	provider.EXPECT().CreatePayment(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, in domain.CreatePaymentInput) {
			assert.Equal(t, "o1", in.OrderID)
			assert.True(t, in.Amount.Equal(decimal.RequireFromString("214.64")))
			assert.Equal(t, "UYU", in.Currency)
			assert.Equal(t, 5, in.ExpirationMinutes)
		}).
		Return(&domain.CreatedPayment{
			ID:          "yk-1",
			RedirectURL: "https://yookassa.test/pay/yk-1",
			Status:      domain.PaymentStatusPending,
		}, nil)
	provider.EXPECT().Name().Return("yookassa")

	m.payments.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, p *domain.Payment) {
			assert.Equal(t, "yk-1", p.ProviderPaymentID)
			assert.Equal(t, domain.PaymentStatusPending, p.Status)
		}).
		Return(nil)
	m.reservations.EXPECT().ExtendByOrder(mock.Anything, "o1", mock.Anything).Return(nil)
	m.orders.EXPECT().ExtendWindow(mock.Anything, "o1", mock.Anything).Return(nil)
	m.links.EXPECT().Set(mock.Anything, "o1", mock.Anything).Return(nil)

	link, err := svc.RequestPaymentWindow(context.Background(), "o1", "buyer")

	require.NoError(t, err)
	assert.Equal(t, "https://yookassa.test/pay/yk-1", link.RedirectURL)
	assert.Equal(t, "yookassa", link.Provider)
}

func TestOrderService_RequestPaymentWindow_ReusesCachedLink(t *testing.T) {
	svc, m := newOrderService(t)

	cached := &domain.PaymentLink{
		PaymentID:   "p1",
		Provider:    "yookassa",
		RedirectURL: "https://yookassa.test/pay/yk-1",
		ExpiresAt:   time.Now().Add(3 * time.Minute),
	}
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(pendingOrder(), nil)
	m.links.EXPECT().Get(mock.Anything, "o1").Return(cached, nil)

	link, err := svc.RequestPaymentWindow(context.Background(), "o1", "buyer")

	require.NoError(t, err)
	assert.Equal(t, cached, link)
}

func TestOrderService_RequestPaymentWindow_ReusesStoredPayment(t *testing.T) {
	svc, m := newOrderService(t)

	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(pendingOrder(), nil)
	m.links.EXPECT().Get(mock.Anything, "o1").Return(nil, nil)
	m.payments.EXPECT().GetActiveLink(mock.Anything, "o1").Return(&domain.Payment{
		ID:          "p1",
		OrderID:     "o1",
		Provider:    "yookassa",
		Status:      domain.PaymentStatusPending,
		RedirectURL: "https://yookassa.test/pay/yk-1",
	}, nil)
	m.links.EXPECT().Set(mock.Anything, "o1", mock.Anything).Return(nil)

	link, err := svc.RequestPaymentWindow(context.Background(), "o1", "buyer")

	require.NoError(t, err)
	assert.Equal(t, "p1", link.PaymentID)
	assert.Equal(t, "https://yookassa.test/pay/yk-1", link.RedirectURL)
}

func TestOrderService_RequestPaymentWindow_WrongBuyer(t *testing.T) {
	svc, m := newOrderService(t)

	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(pendingOrder(), nil)

	_, err := svc.RequestPaymentWindow(context.Background(), "o1", "someone-else")

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderService_RequestPaymentWindow_OrderNotPending(t *testing.T) {
	svc, m := newOrderService(t)

	confirmed := pendingOrder()
	confirmed.Status = domain.OrderStatusConfirmed
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(confirmed, nil)

	_, err := svc.RequestPaymentWindow(context.Background(), "o1", "buyer")

	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
}

func TestOrderService_RequestPaymentWindow_WindowLapsed(t *testing.T) {
	svc, m := newOrderService(t)

	lapsed := pendingOrder()
	lapsed.ReservationExpiresAt = time.Now().Add(-time.Minute)
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(lapsed, nil)

	_, err := svc.RequestPaymentWindow(context.Background(), "o1", "buyer")

	assert.ErrorIs(t, err, domain.ErrOrderExpired)
}

func TestOrderService_ExpireStaleOrders(t *testing.T) {
	svc, m := newOrderService(t)

	failedOrder := &domain.Order{ID: "o1", BuyerID: "buyer", Status: domain.OrderStatusPending}
	inFlightOrder := &domain.Order{ID: "o2", BuyerID: "buyer", Status: domain.OrderStatusPending}
	noPaymentOrder := &domain.Order{ID: "o3", BuyerID: "buyer", Status: domain.OrderStatusPending}

	m.orders.EXPECT().ListPending(mock.Anything).Return([]*domain.Order{failedOrder, inFlightOrder, noPaymentOrder}, nil)
	m.payments.EXPECT().ListByOrder(mock.Anything, "o1").Return([]*domain.Payment{
		{ID: "p1", Status: domain.PaymentStatusExpired},
		{ID: "p2", Status: domain.PaymentStatusFailed},
	}, nil)
	m.payments.EXPECT().ListByOrder(mock.Anything, "o2").Return([]*domain.Payment{
		{ID: "p3", Status: domain.PaymentStatusProcessing},
	}, nil)
	m.payments.EXPECT().ListByOrder(mock.Anything, "o3").Return(nil, nil)
	m.orders.EXPECT().Expire(mock.Anything, "o1").Return(nil)
	m.notifier.EXPECT().NotifyOrderExpired(mock.Anything, failedOrder).Return().Maybe()

	expired, err := svc.ExpireStaleOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "o1", expired[0].ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestOrderService_ExpireStaleOrders_SkipsAlreadyExpired(t *testing.T) {
	svc, m := newOrderService(t)

	order := &domain.Order{ID: "o1", Status: domain.OrderStatusPending}
	m.orders.EXPECT().ListPending(mock.Anything).Return([]*domain.Order{order}, nil)
	m.payments.EXPECT().ListByOrder(mock.Anything, "o1").Return([]*domain.Payment{
		{ID: "p1", Status: domain.PaymentStatusCancelled},
	}, nil)
	m.orders.EXPECT().Expire(mock.Anything, "o1").Return(domain.ErrOrderAlreadyExpired)

	expired, err := svc.ExpireStaleOrders(context.Background())

	require.NoError(t, err)
	assert.Empty(t, expired)
}
