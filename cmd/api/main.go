// Package main is the entry point for the portal API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/tripora/portal/backend/internal/config"
	"github.com/tripora/portal/backend/internal/domain"
	"github.com/tripora/portal/backend/internal/handler"
	"github.com/tripora/portal/backend/internal/middleware"
	"github.com/tripora/portal/backend/internal/notify"
	"github.com/tripora/portal/backend/internal/repo"
	"github.com/tripora/portal/backend/internal/service"
	"github.com/tripora/portal/backend/internal/watch"
	"github.com/tripora/portal/backend/migrations"
)

// maxBodyBytes bounds request bodies. Image uploads arrive base64-encoded
// inside JSON, so the cap has to leave room for a few megabytes of photo.
const maxBodyBytes = 16 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Migrations -------------------------------------------------------
	// Apply embedded goose migrations at startup so a fresh database is
	// usable without a separate deploy step.
	if err := migrateUp(pool); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	// --- Services ---------------------------------------------------------
	packageHub := watch.NewHub[domain.TripPackage]()
	contentHubs := service.NewContentHubs()

	packageSvc := service.NewPackageService(repo.NewPackageRepo(pool), packageHub)
	contentSvc := service.NewContentService(
		repo.NewHeroSlideRepo(pool),
		repo.NewPlaceRepo(pool),
		repo.NewRegionRepo(pool),
		contentHubs,
	)
	notifier := notify.New(cfg.SMSGatewayURL, cfg.EmailGatewayURL, logger)
	bookingSvc := service.NewBookingService(
		repo.NewTicketBookingRepo(pool),
		repo.NewTourBookingRepo(pool),
		repo.NewVehicleBookingRepo(pool),
		notifier,
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	srvHandler := handler.NewServer(packageSvc, contentSvc, bookingSvc)
	srvHandler.Routes(r, middleware.NewAdminAuth([]byte(cfg.JWTSecret)))

	// --- HTTP Server ------------------------------------------------------
	// ReadTimeout bounds slow clients. WriteTimeout stays unset because the
	// watch endpoints hold their response streams open indefinitely.
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     r,
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrateUp applies all pending embedded migrations using a database/sql
// connection borrowed from the pgx pool's config.
func migrateUp(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	for _, res := range results {
		slog.Info("migration applied", "source", res.Source.Path, "duration_ms", res.Duration.Milliseconds())
	}
	return nil
}
