// Package app wires configuration, storage, services, and the HTTP
// server into a running process.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (goose)
	"github.com/pressly/goose/v3"

	"github.com/dreamlog/backend/internal/adapter/gemini"
	"github.com/dreamlog/backend/internal/adapter/postgres"
	dreamrepo "github.com/dreamlog/backend/internal/adapter/postgres/dream"
	userrepo "github.com/dreamlog/backend/internal/adapter/postgres/user"
	"github.com/dreamlog/backend/internal/auth"
	"github.com/dreamlog/backend/internal/config"
	authservice "github.com/dreamlog/backend/internal/service/auth"
	"github.com/dreamlog/backend/internal/service/journal"
	"github.com/dreamlog/backend/internal/transport/middleware"
	"github.com/dreamlog/backend/internal/transport/rest"
	"github.com/dreamlog/backend/migrations"
)

// Run is the application entry point. It loads configuration, connects
// to PostgreSQL, applies pending migrations, assembles the services and
// HTTP surface, and serves until the context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrateUp(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	geminiClient := gemini.New(cfg.Gemini, logger)

	authSvc := authservice.NewService(logger, userrepo.New(pool), jwtManager, cfg.Auth)
	journalSvc := journal.NewService(logger, dreamrepo.New(pool), geminiClient, cfg.Journal)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Deps{
		Logger:    logger,
		Auth:      rest.NewAuthHandler(authSvc, logger),
		Dreams:    rest.NewDreamHandler(journalSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Validator: authSvc,
		CORS:      cfg.CORS,
		Limiter:   limiter,
		RateLimit: cfg.Server.RateLimitPerMin,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("http server listening", slog.String("addr", srv.Addr))

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

// migrateUp applies the embedded goose migrations through database/sql,
// which goose requires.
func migrateUp(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
