// Package server wires storage, the account service and the REST endpoint
// into a runnable process and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/logging"
	"github.com/dmitrijs2005/recipekeeper/internal/server/config"
	"github.com/dmitrijs2005/recipekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipekeeper/internal/server/rest"
	"github.com/dmitrijs2005/recipekeeper/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	accounts *services.AccountService
}

// OpenStorage returns the repository manager selected by the DSN, with
// migrations applied. db is nil for the in-memory backend.
func OpenStorage(ctx context.Context, c *config.Config) (*sql.DB, repomanager.RepositoryManager, error) {
	if c.UsesMemoryStore() {
		return nil, repomanager.NewInMemoryRepositoryManager(), nil
	}

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrations error: %w", err)
	}
	return db, m, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, m, err := OpenStorage(ctx, c)
	if err != nil {
		return nil, err
	}

	// A nil *sql.DB must not become a non-nil DBTX.
	var conn dbx.DBTX
	if db != nil {
		conn = db
	}

	accounts, err := services.New(conn, m, c)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	return &App{config: c, logger: logger, db: db, accounts: accounts}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config.EndpointAddrHTTP, app.logger, app.accounts, app.config.AllowedOrigins, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives or the HTTP server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "memory_store", app.config.UsesMemoryStore())

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "closing database", "error", err)
		}
	}
	app.logger.Info(ctx, "App stopped")
}
