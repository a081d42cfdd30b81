package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"catalog-api/internal/cache"
	"catalog-api/internal/common/pagination"
	"catalog-api/internal/config"
	pgRepo "catalog-api/internal/infra/adapter/persistence/postgres"
	"catalog-api/internal/infra/db"
	"catalog-api/internal/observability/logging"
	"catalog-api/internal/observability/tracing"
	"catalog-api/internal/resilience/circuitbreaker"

	artUC "catalog-api/internal/usecase/article"
	prodUC "catalog-api/internal/usecase/product"

	hhttp "catalog-api/internal/handler/http"
	harticle "catalog-api/internal/handler/http/article"
	hproduct "catalog-api/internal/handler/http/product"
	"catalog-api/internal/handler/http/requestid"

	_ "catalog-api/docs" // swagger docs
)

// @title           Catalog API
// @version         1.0
// @description     記事と商品を管理するカタログ REST API
// @description     一覧と詳細の読み取りはプロセス内キャッシュを経由します。

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

const serviceName = "catalog-api"

func main() {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger()

	shutdownTracing := tracing.Setup(serviceName, cfg.Version)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	database := initDatabase(logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	components := setupServer(logger, database, cfg)
	runServer(logger, components, cfg)
}

// initLogger builds the process logger from LOG_LEVEL and LOG_FORMAT and installs it as the default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection, runs migrations and seeds an empty catalog.
func initDatabase(logger *slog.Logger, cfg *config.AppConfig) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Open(ctx)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.MigrateUp(ctx, database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.SeedData {
		catalog, err := db.DefaultCatalog()
		if err != nil {
			logger.Error("failed to load seed catalog", slog.Any("error", err))
			os.Exit(1)
		}
		seeded, err := db.Seed(ctx, database, catalog)
		if err != nil {
			logger.Error("failed to seed database", slog.Any("error", err))
			os.Exit(1)
		}
		if seeded {
			logger.Info("seed catalog inserted",
				slog.Int("articles", len(catalog.Articles)),
				slog.Int("unlinked_products", len(catalog.Products)))
		}
	}

	return database
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler http.Handler
	Sweeper *cache.Sweeper
}

// setupServer wires repositories, the cache and the use cases, and returns the HTTP handler.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *config.AppConfig) *ServerComponents {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	articleRepo := pgRepo.NewArticleRepo(breaker)
	productRepo := pgRepo.NewProductRepo(breaker)

	store := cache.NewStore(cfg.Cache.StoreConfig("catalog"))
	sweeper, err := cache.NewSweeper(store, cfg.Cache.SweepSchedule, logger)
	if err != nil {
		logger.Error("failed to create cache sweeper", slog.Any("error", err))
		os.Exit(1)
	}

	artSvc := artUC.NewService(articleRepo, store, logger)
	prodSvc := prodUC.NewService(productRepo, articleRepo, store, logger)

	mux := setupRoutes(logger, database, cfg.Version, store, breaker, artSvc, prodSvc)

	return &ServerComponents{
		Handler: applyMiddleware(logger, mux, cfg),
		Sweeper: sweeper,
	}
}

// setupRoutes registers the resource routes and the operational endpoints.
func setupRoutes(
	logger *slog.Logger,
	database *sql.DB,
	version string,
	store *cache.Store,
	breaker *circuitbreaker.DBCircuitBreaker,
	artSvc *artUC.Service,
	prodSvc *prodUC.Service,
) *http.ServeMux {
	mux := http.NewServeMux()

	// ヘルスチェックエンドポイント
	mux.Handle("GET /health", &hhttp.HealthHandler{
		DB:      database,
		Version: version,
		Cache:   store,
		Breaker: breaker,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	paginationCfg := pagination.LoadFromEnv()
	harticle.Register(mux, artSvc, paginationCfg, logger)
	hproduct.Register(mux, prodSvc, paginationCfg, logger)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Tracing → Recovery → Logging → Metrics → Input Validation → Timeout
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg *config.AppConfig) http.Handler {
	return hhttp.Chain(handler,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		hhttp.InputValidation(hhttp.DefaultMaxBodyBytes),
		hhttp.Timeout(cfg.RequestTimeout),
	)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, components *ServerComponents, cfg *config.AppConfig) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	components.Sweeper.Start()
	logger.Info("cache sweeper started", slog.String("schedule", cfg.Cache.SweepSchedule))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	cancel()
	components.Sweeper.Stop()
	logger.Info("server stopped")
}
