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
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/2003aryan/crisp-ai/internal/config"
	sqliteRepo "github.com/2003aryan/crisp-ai/internal/infra/adapter/persistence/sqlite"
	"github.com/2003aryan/crisp-ai/internal/infra/db"
	"github.com/2003aryan/crisp-ai/internal/infra/extractor"
	"github.com/2003aryan/crisp-ai/internal/infra/janitor"
	"github.com/2003aryan/crisp-ai/internal/infra/summarizer"
	"github.com/2003aryan/crisp-ai/internal/observability/logging"
	"github.com/2003aryan/crisp-ai/internal/observability/tracing"
	"github.com/2003aryan/crisp-ai/internal/repository"

	pgRepo "github.com/2003aryan/crisp-ai/internal/infra/adapter/persistence/postgres"
	docUC "github.com/2003aryan/crisp-ai/internal/usecase/document"
	sumUC "github.com/2003aryan/crisp-ai/internal/usecase/summary"

	hhttp "github.com/2003aryan/crisp-ai/internal/handler/http"
	hauth "github.com/2003aryan/crisp-ai/internal/handler/http/auth"
	"github.com/2003aryan/crisp-ai/internal/handler/http/requestid"
	hsummary "github.com/2003aryan/crisp-ai/internal/handler/http/summary"
	hupload "github.com/2003aryan/crisp-ai/internal/handler/http/upload"
	authservice "github.com/2003aryan/crisp-ai/internal/service/auth"
)

func main() {
	logger := logging.NewLogger()
	if os.Getenv("LOG_FORMAT") == "text" {
		logger = logging.NewTextLogger()
	}
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if err := config.ValidateJWTSecret(cfg.JWTSecret); err != nil {
		logger.Error("token secret validation failed", slog.Any("error", err))
		os.Exit(1)
	}

	initTracing()

	database := initDatabase(logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, cfg)

	sweeper := janitor.New(cfg.UploadDir, cfg.UploadMaxAge, logger)
	if err := sweeper.Start(); err != nil {
		logger.Error("failed to start upload janitor", slog.Any("error", err))
		os.Exit(1)
	}
	defer sweeper.Stop()

	runServer(logger, handler, cfg)
}

// initTracing installs the process-wide tracer provider and the W3C
// trace-context propagator.
func initTracing() {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

// initDatabase opens the configured store. With DATABASE_URL set it
// connects to Postgres and runs migrations; otherwise it falls back to
// the embedded SQLite file.
func initDatabase(logger *slog.Logger, cfg *config.Config) *sql.DB {
	if cfg.UsePostgres() {
		database, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to open database", slog.Any("error", err))
			os.Exit(1)
		}
		if err := db.MigrateUp(database); err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("database ready", slog.String("driver", "postgres"))
		return database
	}

	database, err := sqliteRepo.Open(cfg.SQLitePath)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database ready",
		slog.String("driver", "sqlite"),
		slog.String("path", cfg.SQLitePath))
	return database
}

// setupServer wires repositories, services, and handlers into the root
// handler with the full middleware chain applied.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *config.Config) http.Handler {
	var users repository.UserRepository
	var summaries repository.SummaryRepository
	if cfg.UsePostgres() {
		users = pgRepo.NewUserRepo(database)
		summaries = pgRepo.NewSummaryRepo(database)
	} else {
		users = sqliteRepo.NewUserRepo(database)
		summaries = sqliteRepo.NewSummaryRepo(database)
	}

	tokens := authservice.NewTokenManager([]byte(cfg.JWTSecret))
	authSvc := authservice.NewService(users, tokens)

	provider, err := summarizer.NewFromEnv()
	if err != nil {
		logger.Error("failed to initialize summarization provider", slog.Any("error", err))
		os.Exit(1)
	}

	sumSvc := sumUC.NewService(summaries, provider)
	sumSvc.WordLimit = cfg.SummaryWordLimit

	docSvc := docUC.NewService(extractor.New(), cfg.UploadDir)

	mux := setupRoutes(database, cfg, authSvc, tokens, docSvc, sumSvc)
	return applyMiddleware(logger, mux)
}

// setupRoutes registers public and token-protected routes.
func setupRoutes(
	database *sql.DB,
	cfg *config.Config,
	authSvc *authservice.Service,
	tokens *authservice.TokenManager,
	docSvc *docUC.Service,
	sumSvc *sumUC.Service,
) *http.ServeMux {
	// Credential endpoints are the brute-force target, so they get a
	// tighter per-IP limit than everything else.
	authRateLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)

	mux := http.NewServeMux()

	mux.Handle("POST /api/auth/register", authRateLimiter.Limit(hauth.RegisterHandler(authSvc)))
	mux.Handle("POST /api/auth/login", authRateLimiter.Limit(hauth.LoginHandler(authSvc)))

	mux.Handle("GET /api/status", hhttp.StatusHandler{})
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	authz := hauth.Authz(tokens)
	mux.Handle("POST /api/upload-file", authz(hupload.Handler{Svc: docSvc}))
	hsummary.Register(mux, sumSvc, tokens)

	return mux
}

// applyMiddleware wraps the mux in the shared middleware chain,
// outermost first: tracing, request ID, panic recovery, logging, body
// limit, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := hhttp.MetricsMiddleware(handler)
	// 12 MiB leaves headroom over the upload handler's own 10 MiB cap.
	chain = hhttp.LimitRequestBody(12 << 20)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = tracing.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and blocks until shutdown completes.
func runServer(logger *slog.Logger, handler http.Handler, cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris guard
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
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

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
