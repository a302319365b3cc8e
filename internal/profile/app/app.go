package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/tomato/internal/profile/http"
	"github.com/aussiebroadwan/tomato/internal/profile/i18n"
	"github.com/aussiebroadwan/tomato/internal/profile/service"
	"github.com/aussiebroadwan/tomato/internal/profile/store"
	"github.com/aussiebroadwan/tomato/internal/profile/store/drivers/sqlite"
	"github.com/aussiebroadwan/tomato/pkg/shopsdk"
	"github.com/aussiebroadwan/tomato/pkg/slogx"
	"golang.org/x/text/language"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application is the profile console with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db          store.Store
	credentials *store.CredentialStore
	client      *shopsdk.SDKClient
	catalog     *i18n.Catalog

	profileService      *service.ProfileService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "profile-console",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initCatalog(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler is the root HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("profile console starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"backend", app.cfg.BackendURL,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		if closeErr := app.db.Close(); closeErr != nil {
			app.logger.Error("error closing local storage", "error", closeErr)
		}
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down profile console...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing local storage", "error", err)
		return err
	}

	app.logger.Info("profile console stopped")
	return nil
}

// initDatabase opens local storage and applies migrations.
func (app *Application) initDatabase() error {
	dsn := app.cfg.StorageFile
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", app.cfg.StorageFile)
	}

	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to open local storage: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply local storage migrations: %w", err)
	}

	app.logger.Info("local storage migrations applied successfully", "file", app.cfg.StorageFile)
	return nil
}

func (app *Application) initCatalog() error {
	fallback, err := language.Parse(app.cfg.DefaultLocale)
	if err != nil {
		app.logger.Warn("invalid default locale, using built-in default",
			"locale", app.cfg.DefaultLocale,
			"default", i18n.DefaultLocale.String(),
		)
		fallback = i18n.DefaultLocale
	}

	catalog, err := i18n.New(fallback)
	if err != nil {
		return fmt.Errorf("failed to build message catalog: %w", err)
	}
	app.catalog = catalog
	return nil
}

// initServices wires the backend client and the profile services.
func (app *Application) initServices() {
	timeout := app.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = shopsdk.DefaultTimeout
	}
	app.client = shopsdk.NewSDKClient(app.cfg.BackendURL, timeout)
	app.credentials = store.NewCredentialStore(app.db)

	app.profileService = &service.ProfileService{
		Credentials: app.credentials,
		Sessions:    service.SDKSessions(app.client),
		LoginPath:   app.cfg.LoginPath,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.credentials,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.catalog, app.logger)

	router.ProfileService = app.profileService
	router.Authenticator = app.client
	router.Credentials = app.credentials
	if app.cfg.HomeURL != "" {
		router.HomeURL = app.cfg.HomeURL
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
