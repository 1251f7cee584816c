package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/avezhov/ReTicket/internal/domain"
	"github.com/avezhov/ReTicket/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RunsBothPhases(t *testing.T) {
	syncer := mocks.NewMockPaymentSyncer(t)
	expirer := mocks.NewMockOrderExpirer(t)
	log := newTestLogger(t)

	s := New(syncer, expirer, 50*time.Millisecond, log)

	syncer.EXPECT().SyncStalePayments(mock.Anything).Return(nil)
	expirer.EXPECT().ExpireStaleOrders(mock.Anything).Return([]*domain.Order{
		{ID: "o1", BuyerID: "u1", EventID: "e1"},
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 1)
	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_Tick_SyncFailureStillExpires(t *testing.T) {
	syncer := mocks.NewMockPaymentSyncer(t)
	expirer := mocks.NewMockOrderExpirer(t)
	log := newTestLogger(t)

	s := New(syncer, expirer, 50*time.Millisecond, log)

	syncer.EXPECT().SyncStalePayments(mock.Anything).Return(errors.New("provider down"))
	expirer.EXPECT().ExpireStaleOrders(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	syncer := mocks.NewMockPaymentSyncer(t)
	expirer := mocks.NewMockOrderExpirer(t)
	log := newTestLogger(t)

	s := New(syncer, expirer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	syncer := mocks.NewMockPaymentSyncer(t)
	expirer := mocks.NewMockOrderExpirer(t)
	log := newTestLogger(t)

	s := New(syncer, expirer, 30*time.Millisecond, log)

	syncer.EXPECT().SyncStalePayments(mock.Anything).Return(nil).Times(3)
	expirer.EXPECT().ExpireStaleOrders(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(syncer.Calls), 3)
}
