package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avezhov/ReTicket/internal/domain"
	"github.com/avezhov/ReTicket/internal/service/ports/mocks"
)

type reconcileServiceMocks struct {
	payments  *mocks.MockPaymentRepo
	orders    *mocks.MockOrderRepo
	providers *mocks.MockProviderRegistry
	provider  *mocks.MockPaymentProvider
	earnings  *mocks.MockEarningsDispatcher
	notifier  *mocks.MockNotifier
}

func newReconcileService(t *testing.T) (*ReconcileService, reconcileServiceMocks) {
	t.Helper()
	m := reconcileServiceMocks{
		payments:  mocks.NewMockPaymentRepo(t),
		orders:    mocks.NewMockOrderRepo(t),
		providers: mocks.NewMockProviderRegistry(t),
		provider:  mocks.NewMockPaymentProvider(t),
		earnings:  mocks.NewMockEarningsDispatcher(t),
		notifier:  mocks.NewMockNotifier(t),
	}
	svc := NewReconcileService(m.payments, m.orders, m.providers, m.earnings, m.notifier, 5*time.Minute, 25, newTestLogger(t))
	return svc, m
}

func reconcilablePayment(status domain.PaymentStatus) *domain.Payment {
	return &domain.Payment{
		ID:                "p1",
		OrderID:           "o1",
		Provider:          "yookassa",
		ProviderPaymentID: "yk-1",
		Status:            status,
		Amount:            decimal.RequireFromString("214.64"),
		Currency:          "UYU",
	}
}

func reconcilableOrder() *domain.Order {
	return &domain.Order{
		ID:       "o1",
		BuyerID:  "buyer",
		EventID:  "e1",
		Status:   domain.OrderStatusPending,
		Total:    decimal.RequireFromString("214.64"),
		Currency: "UYU",
	}
}

func TestReconcileService_Reconcile_Paid(t *testing.T) {
	svc, m := newReconcileService(t)

	order := reconcilableOrder()
	m.providers.EXPECT().Get("yookassa").Return(m.provider, nil)
	m.payments.EXPECT().GetByProviderID(mock.Anything, "yookassa", "yk-1").Return(reconcilablePayment(domain.PaymentStatusProcessing), nil)
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.provider.EXPECT().GetPayment(mock.Anything, "yk-1").Return(&domain.ProviderPayment{
		ID:       "yk-1",
		Status:   domain.PaymentStatusPaid,
		Amount:   decimal.RequireFromString("214.64"),
		Currency: "UYU",
	}, nil)
	m.payments.EXPECT().UpdateSnapshot(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, p *domain.Payment) {
			assert.Equal(t, domain.PaymentStatusPaid, p.Status)
			assert.NotNil(t, p.ApprovedAt)
		}).
		Return(nil)
	m.payments.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil).Times(2)
	m.orders.EXPECT().Confirm(mock.Anything, "o1").Return(nil)
	m.earnings.EXPECT().OrderConfirmed(mock.Anything, order).Return(nil)
	m.notifier.EXPECT().NotifyOrderConfirmed(mock.Anything, order).Return().Maybe()

	err := svc.Reconcile(context.Background(), "yookassa", "yk-1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReconcileService_Reconcile_PaidReplay(t *testing.T) {
	svc, m := newReconcileService(t)

	// Order already confirmed by an earlier pass: no earnings re-dispatch,
	// no notification, and the replay is not an error.
	m.providers.EXPECT().Get("yookassa").Return(m.provider, nil)
	m.payments.EXPECT().GetByProviderID(mock.Anything, "yookassa", "yk-1").Return(reconcilablePayment(domain.PaymentStatusPaid), nil)
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(reconcilableOrder(), nil)
	m.provider.EXPECT().GetPayment(mock.Anything, "yk-1").Return(&domain.ProviderPayment{
		ID:       "yk-1",
		Status:   domain.PaymentStatusPaid,
		Amount:   decimal.RequireFromString("214.64"),
		Currency: "UYU",
	}, nil)
	m.payments.EXPECT().UpdateSnapshot(mock.Anything, mock.Anything).Return(nil)
	// Status unchanged: observation event only.
	m.payments.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil).Times(1)
	m.orders.EXPECT().Confirm(mock.Anything, "o1").Return(domain.ErrOrderAlreadyConfirmed)

	err := svc.Reconcile(context.Background(), "yookassa", "yk-1")

	require.NoError(t, err)
}

func TestReconcileService_Reconcile_PaidAfterOrderExpired(t *testing.T) {
	svc, m := newReconcileService(t)

	// The scheduler swept the order to expired before the paid observation
	// arrived. The order stays terminal, no earnings are dispatched, and the
	// webhook is acknowledged so the provider stops redelivering.
	order := reconcilableOrder()
	order.Status = domain.OrderStatusExpired
	m.providers.EXPECT().Get("yookassa").Return(m.provider, nil)
	m.payments.EXPECT().GetByProviderID(mock.Anything, "yookassa", "yk-1").Return(reconcilablePayment(domain.PaymentStatusProcessing), nil)
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.provider.EXPECT().GetPayment(mock.Anything, "yk-1").Return(&domain.ProviderPayment{
		ID:       "yk-1",
		Status:   domain.PaymentStatusPaid,
		Amount:   decimal.RequireFromString("214.64"),
		Currency: "UYU",
	}, nil)
	m.payments.EXPECT().UpdateSnapshot(mock.Anything, mock.Anything).Return(nil)
	m.payments.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil).Times(2)
	m.orders.EXPECT().Confirm(mock.Anything, "o1").Return(domain.ErrOrderAlreadyExpired)

	err := svc.Reconcile(context.Background(), "yookassa", "yk-1")

	require.NoError(t, err)
}

func TestReconcileService_Reconcile_AmountMismatch(t *testing.T) {
	svc, m := newReconcileService(t)

	m.providers.EXPECT().Get("yookassa").Return(m.provider, nil)
	m.payments.EXPECT().GetByProviderID(mock.Anything, "yookassa", "yk-1").Return(reconcilablePayment(domain.PaymentStatusProcessing), nil)
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(reconcilableOrder(), nil)
	m.provider.EXPECT().GetPayment(mock.Anything, "yk-1").Return(&domain.ProviderPayment{
		ID:       "yk-1",
		Status:   domain.PaymentStatusPaid,
		Amount:   decimal.RequireFromString("1.00"),
		Currency: "UYU",
	}, nil)

	// No UpdateSnapshot, no events, no order transition.
	err := svc.Reconcile(context.Background(), "yookassa", "yk-1")

	assert.ErrorIs(t, err, domain.ErrPaymentAmountMismatch)
}

func TestReconcileService_Reconcile_FailedCancelsOrder(t *testing.T) {
	svc, m := newReconcileService(t)

	order := reconcilableOrder()
	m.providers.EXPECT().Get("yookassa").Return(m.provider, nil)
	m.payments.EXPECT().GetByProviderID(mock.Anything, "yookassa", "yk-1").Return(reconcilablePayment(domain.PaymentStatusPending), nil)
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.provider.EXPECT().GetPayment(mock.Anything, "yk-1").Return(&domain.ProviderPayment{
		ID:              "yk-1",
		Status:          domain.PaymentStatusFailed,
		Amount:          decimal.RequireFromString("214.64"),
		Currency:        "UYU",
		RejectionReason: "insufficient_funds",
	}, nil)
	m.payments.EXPECT().UpdateSnapshot(mock.Anything, mock.Anything).Return(nil)
	m.payments.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil).Times(2)
	m.orders.EXPECT().Cancel(mock.Anything, "o1").Return(nil)
	m.notifier.EXPECT().NotifyPaymentFailed(mock.Anything, order, mock.Anything).Return().Maybe()

	err := svc.Reconcile(context.Background(), "yookassa", "yk-1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReconcileService_Reconcile_FailedAfterConfirmedIsNoop(t *testing.T) {
	svc, m := newReconcileService(t)

	// A second payment attempt failing after another one already confirmed
	// the order must not disturb the sale.
	m.providers.EXPECT().Get("yookassa").Return(m.provider, nil)
	m.payments.EXPECT().GetByProviderID(mock.Anything, "yookassa", "yk-2").Return(&domain.Payment{
		ID:                "p2",
		OrderID:           "o1",
		Provider:          "yookassa",
		ProviderPaymentID: "yk-2",
		Status:            domain.PaymentStatusPending,
		Amount:            decimal.RequireFromString("214.64"),
		Currency:          "UYU",
	}, nil)
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(reconcilableOrder(), nil)
	m.provider.EXPECT().GetPayment(mock.Anything, "yk-2").Return(&domain.ProviderPayment{
		ID:       "yk-2",
		Status:   domain.PaymentStatusCancelled,
		Amount:   decimal.RequireFromString("214.64"),
		Currency: "UYU",
	}, nil)
	m.payments.EXPECT().UpdateSnapshot(mock.Anything, mock.Anything).Return(nil)
	m.payments.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil).Times(2)
	m.orders.EXPECT().Cancel(mock.Anything, "o1").Return(domain.ErrOrderAlreadyConfirmed)

	err := svc.Reconcile(context.Background(), "yookassa", "yk-2")

	require.NoError(t, err)
}

func TestReconcileService_Reconcile_PendingLeavesOrderAlone(t *testing.T) {
	svc, m := newReconcileService(t)

	m.providers.EXPECT().Get("yookassa").Return(m.provider, nil)
	m.payments.EXPECT().GetByProviderID(mock.Anything, "yookassa", "yk-1").Return(reconcilablePayment(domain.PaymentStatusPending), nil)
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(reconcilableOrder(), nil)
	m.provider.EXPECT().GetPayment(mock.Anything, "yk-1").Return(&domain.ProviderPayment{
		ID:       "yk-1",
		Status:   domain.PaymentStatusPending,
		Amount:   decimal.RequireFromString("214.64"),
		Currency: "UYU",
	}, nil)
	m.payments.EXPECT().UpdateSnapshot(mock.Anything, mock.Anything).Return(nil)
	m.payments.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil).Times(1)

	err := svc.Reconcile(context.Background(), "yookassa", "yk-1")

	require.NoError(t, err)
}

func TestReconcileService_Reconcile_EarningsFailureDoesNotFailPass(t *testing.T) {
	svc, m := newReconcileService(t)

	order := reconcilableOrder()
	m.providers.EXPECT().Get("yookassa").Return(m.provider, nil)
	m.payments.EXPECT().GetByProviderID(mock.Anything, "yookassa", "yk-1").Return(reconcilablePayment(domain.PaymentStatusProcessing), nil)
	m.orders.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	m.provider.EXPECT().GetPayment(mock.Anything, "yk-1").Return(&domain.ProviderPayment{
		ID:       "yk-1",
		Status:   domain.PaymentStatusPaid,
		Amount:   decimal.RequireFromString("214.64"),
		Currency: "UYU",
	}, nil)
	m.payments.EXPECT().UpdateSnapshot(mock.Anything, mock.Anything).Return(nil)
	m.payments.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil).Times(2)
	m.orders.EXPECT().Confirm(mock.Anything, "o1").Return(nil)
	m.earnings.EXPECT().OrderConfirmed(mock.Anything, order).Return(errors.New("kafka down"))
	m.notifier.EXPECT().NotifyOrderConfirmed(mock.Anything, order).Return().Maybe()

	err := svc.Reconcile(context.Background(), "yookassa", "yk-1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReconcileService_Reconcile_UnknownProvider(t *testing.T) {
	svc, m := newReconcileService(t)

	m.providers.EXPECT().Get("stripe").Return(nil, domain.ErrUnknownProvider)

	err := svc.Reconcile(context.Background(), "stripe", "x")

	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestReconcileService_HandleWebhook(t *testing.T) {
	svc, m := newReconcileService(t)

	body := []byte(`{"event":"payment.succeeded","object":{"id":"yk-1"}}`)
	m.providers.EXPECT().Get("yookassa").Return(m.provider, nil).Times(2)
	m.provider.EXPECT().ParseWebhook(body).Return("yk-1", nil)
	m.payments.EXPECT().GetByProviderID(mock.Anything, "yookassa", "yk-1").Return(nil, domain.ErrPaymentNotFound)

	err := svc.HandleWebhook(context.Background(), "yookassa", body)

	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestReconcileService_SyncStalePayments(t *testing.T) {
	svc, m := newReconcileService(t)

	stale := []*domain.Payment{
		reconcilablePayment(domain.PaymentStatusPending),
	}
	m.payments.EXPECT().ListStalePending(mock.Anything, mock.Anything, 25).Return(stale, nil)
	// Per-payment reconcile failures are logged, never returned.
	m.providers.EXPECT().Get("yookassa").Return(m.provider, nil)
	m.payments.EXPECT().GetByProviderID(mock.Anything, "yookassa", "yk-1").Return(nil, errors.New("db gone"))

	err := svc.SyncStalePayments(context.Background())

	require.NoError(t, err)
}

func TestReconcileService_SyncStalePayments_Empty(t *testing.T) {
	svc, m := newReconcileService(t)

	m.payments.EXPECT().ListStalePending(mock.Anything, mock.Anything, 25).Return(nil, nil)

	err := svc.SyncStalePayments(context.Background())

	require.NoError(t, err)
}
