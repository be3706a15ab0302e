package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/samikhan1239/StayFinder/internal/auth"
	"github.com/samikhan1239/StayFinder/internal/config"
	"github.com/samikhan1239/StayFinder/internal/dates"
	"github.com/samikhan1239/StayFinder/internal/events"
	"github.com/samikhan1239/StayFinder/internal/handler"
	"github.com/samikhan1239/StayFinder/internal/middleware"
	"github.com/samikhan1239/StayFinder/internal/notification"
	"github.com/samikhan1239/StayFinder/internal/payment"
	"github.com/samikhan1239/StayFinder/internal/repository"
	"github.com/samikhan1239/StayFinder/internal/router"
	"github.com/samikhan1239/StayFinder/internal/scheduler"
	"github.com/samikhan1239/StayFinder/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	closers    []io.Closer
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"StayFinder",
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
		app.closeAll()
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
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initNotifier() (notification.Fanout, error) {
	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram notifier: %w", err)
	}
	notifiers := notification.Fanout{tg}

	if a.cfg.RabbitMQ.URL == "" {
		a.log.Warn("rabbitmq url is empty, booking events disabled")
		return notifiers, nil
	}

	pub, err := events.NewPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.log)
	if err != nil {
		return nil, fmt.Errorf("init event publisher: %w", err)
	}
	a.closers = append(a.closers, pub)
	a.log.Info("booking events enabled", logger.String("exchange", a.cfg.RabbitMQ.Exchange))

	return append(notifiers, pub), nil
}

func (a *App) initServices() error {
	loc, err := dates.LoadLocation(a.cfg.Booking.Timezone)
	if err != nil {
		return err
	}
	normalizer := dates.New(loc, time.Now)
	a.log.Info("booking calendar configured",
		logger.String("timezone", normalizer.Location().String()),
		logger.Duration("hold_ttl", a.cfg.Booking.HoldTTL),
	)

	phone, err := a.cfg.Booking.PhoneRegexp()
	if err != nil {
		return err
	}

	listingRepo := repository.NewListingRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db, normalizer)

	gateway := payment.NewRazorpay(a.cfg.Payment.KeyID, a.cfg.Payment.KeySecret)
	if !gateway.Configured() {
		a.log.Warn("payment gateway credentials are empty, reservations will fail")
	}

	notifier, err := a.initNotifier()
	if err != nil {
		return err
	}

	reservationService := service.NewReservationService(
		listingRepo,
		bookingRepo,
		gateway,
		notifier,
		normalizer,
		service.ReservationConfig{
			MinPrice:       a.cfg.Booking.MinPrice,
			PhonePattern:   phone,
			Currency:       a.cfg.Booking.Currency,
			HoldTTL:        a.cfg.Booking.HoldTTL,
			GatewayTimeout: a.cfg.Payment.Timeout,
		},
		a.log,
	)
	reconcilerService := service.NewReconcilerService(bookingRepo, gateway, notifier, a.log)

	a.scheduler = scheduler.New(
		reservationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	if a.cfg.Auth.JWTSecret == "" {
		a.log.Warn("jwt secret is empty, every booking request will be rejected")
	}
	resolver := auth.NewJWTResolver(a.cfg.Auth.JWTSecret)

	h := handler.NewHandler(reservationService, reconcilerService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(resolver),
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

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.cfg.Booking.HoldTTL > 0 {
		go a.scheduler.Start(ctx)
	} else {
		a.log.Info("hold expiry disabled")
	}

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
		a.closeAll()
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

	a.closeAll()

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) closeAll() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Error("failed to close resource", logger.String("error", err.Error()))
		}
	}
	a.closers = nil

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			a.log.Error("failed to close db", logger.String("error", err.Error()))
			return
		}
		a.db = nil
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
