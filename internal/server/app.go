// Package server initializes and runs the user-directory server backing
// the retailer onboarding client. It selects a storage backend, applies
// migrations, starts the HTTP API and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/retailhub/internal/logging"
	"github.com/dmitrijs2005/retailhub/internal/server/config"
	"github.com/dmitrijs2005/retailhub/internal/server/httpapi"
	"github.com/dmitrijs2005/retailhub/internal/server/migrations"
	"github.com/dmitrijs2005/retailhub/internal/server/repositories/users"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	repo   users.Repository
	db     *sql.DB
}

func NewApp(cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	app := &App{config: cfg, logger: logger}

	if cfg.DatabaseDSN == "" {
		app.repo = users.NewInMemoryRepository()
		return app, nil
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	app.db = db
	app.repo = users.NewPostgresRepository(db)
	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	store := "in-memory"
	if app.db != nil {
		store = "postgres"
	}
	app.logger.Info(ctx, "starting server", "port", app.config.Port, "store", store)

	e := httpapi.NewRouter(app.repo, app.logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + app.config.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		app.logger.Info(ctx, "shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			return fmt.Errorf("db close error: %w", err)
		}
	}

	app.logger.Info(ctx, "server stopped")
	return nil
}
