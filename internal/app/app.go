package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/avezhov/ReTicket/internal/cache"
	"github.com/avezhov/ReTicket/internal/config"
	"github.com/avezhov/ReTicket/internal/earnings"
	"github.com/avezhov/ReTicket/internal/handler"
	"github.com/avezhov/ReTicket/internal/middleware"
	"github.com/avezhov/ReTicket/internal/notification"
	"github.com/avezhov/ReTicket/internal/provider"
	"github.com/avezhov/ReTicket/internal/provider/yookassa"
	"github.com/avezhov/ReTicket/internal/repository"
	"github.com/avezhov/ReTicket/internal/router"
	"github.com/avezhov/ReTicket/internal/scheduler"
	"github.com/avezhov/ReTicket/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	producer   *earnings.Producer
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ReTicket",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	orderRepo := repository.NewOrderRepo(a.db)
	reservationRepo := repository.NewReservationRepo(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)

	rdb := cache.New(a.cfg.Redis.Addr)
	a.redis = rdb
	links := cache.NewLinkCache(rdb, a.cfg.Redis.LinkTTL)

	a.producer = earnings.NewProducer(a.cfg.Kafka.Brokers, a.cfg.Kafka.Topic)

	yk := yookassa.New(
		a.cfg.YooKassa.ShopID,
		a.cfg.YooKassa.SecretKey,
		a.cfg.YooKassa.BaseURL,
	)
	registry := provider.NewRegistry(yk)

	notifier, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	checkoutCfg, err := a.checkoutConfig()
	if err != nil {
		return fmt.Errorf("checkout config: %w", err)
	}

	orderService := service.NewOrderService(
		orderRepo,
		reservationRepo,
		eventRepo,
		paymentRepo,
		registry,
		links,
		notifier,
		checkoutCfg,
		a.log,
	)
	reconcileService := service.NewReconcileService(
		paymentRepo,
		orderRepo,
		registry,
		a.producer,
		notifier,
		a.cfg.Scheduler.MinPaymentAge,
		a.cfg.Scheduler.BatchSize,
		a.log,
	)

	a.scheduler = scheduler.New(
		reconcileService,
		orderService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(orderService, reconcileService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) checkoutConfig() (service.CheckoutConfig, error) {
	commission, err := decimal.NewFromString(a.cfg.Checkout.CommissionRate)
	if err != nil {
		return service.CheckoutConfig{}, fmt.Errorf("parse commission rate: %w", err)
	}
	vat, err := decimal.NewFromString(a.cfg.Checkout.VATRate)
	if err != nil {
		return service.CheckoutConfig{}, fmt.Errorf("parse vat rate: %w", err)
	}

	return service.CheckoutConfig{
		ReservationTTL:  a.cfg.Checkout.ReservationTTL,
		PaymentWindow:   a.cfg.Checkout.PaymentWindow,
		MaxTickets:      a.cfg.Checkout.MaxTickets,
		CommissionRate:  commission,
		VATRate:         vat,
		Provider:        a.cfg.Checkout.Provider,
		SuccessURL:      a.cfg.Checkout.SuccessURL,
		BackURL:         a.cfg.Checkout.BackURL,
		NotificationURL: a.cfg.Checkout.NotifyURL,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.producer.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.ErrorLevel, "close kafka producer",
			logger.Any("error", err),
		)
	}

	if err := a.redis.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.ErrorLevel, "close redis",
			logger.Any("error", err),
		)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
