package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/encore/internal/encore/http"
	"github.com/aussiebroadwan/encore/internal/encore/metrics"
	"github.com/aussiebroadwan/encore/internal/encore/service"
	"github.com/aussiebroadwan/encore/internal/encore/store"
	"github.com/aussiebroadwan/encore/internal/encore/store/drivers/sqlite"
	"github.com/aussiebroadwan/encore/pkg/cryptox"
	"github.com/aussiebroadwan/encore/pkg/jwtx"
	"github.com/aussiebroadwan/encore/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application owns the service and all of its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	tokens   *jwtx.Issuer
	registry *prometheus.Registry
	metrics  *metrics.Collector

	// Services
	authService         *service.AuthService
	mfaService          *service.MFAService
	concertService      *service.ConcertService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server  *http.Server
	router  *httpapi.Router
	started bool
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "encore",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	tokens, err := InitTokenIssuer(app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize token issuer: %w", err)
	}
	app.tokens = tokens

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()
	app.started = true

	app.logger.Info("encore service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down encore service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.started {
		app.housekeepingService.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("encore service stopped")
	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	dsn := app.cfg.DatabaseFile
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	}
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices builds the business logic services
func (app *Application) initServices() error {
	pepper, err := cryptox.LoadOrGenerateSecret(app.cfg.PepperFile, cryptox.TokenSize256)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	var recorder metrics.Recorder = metrics.Nop{}
	if app.cfg.MetricsEnabled {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		app.metrics = metrics.NewCollector(app.registry)
		recorder = app.metrics
	}

	app.mfaService = &service.MFAService{
		Store:      app.db,
		TOTP:       &service.TOTPEngine{Issuer: app.cfg.TOTPIssuer},
		Metrics:    recorder,
		PendingTTL: app.cfg.PendingSetupTTL,
	}
	app.authService = &service.AuthService{
		Store:      app.db,
		Hasher:     cryptox.NewPasswordHasher(pepper),
		Tokens:     app.tokens,
		MFA:        app.mfaService,
		Metrics:    recorder,
		TokenTTL:   app.cfg.TokenTTL,
		PartialTTL: app.cfg.PartialTokenTTL,
	}
	app.concertService = service.NewConcertService(app.db)

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.PendingSetupTTL,
	)
	app.housekeepingService.Metrics = recorder

	return nil
}

// initHTTP builds the router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.tokens, BuildVersion, app.db, app.logger)

	router.AuthService = app.authService
	router.MFAService = app.mfaService
	router.ConcertService = app.concertService
	router.RequirePartialToken = app.cfg.RequirePartialToken
	router.Limits = app.cfg.RateLimits
	if app.metrics != nil {
		router.Metrics = app.metrics
		router.Gatherer = app.registry
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
