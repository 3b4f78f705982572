package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/cocodas/prier-backend/internal/adapter/cache/redis"
	"github.com/cocodas/prier-backend/internal/adapter/postgres"
	"github.com/cocodas/prier-backend/internal/config"
	"github.com/cocodas/prier-backend/internal/metrics"
	"github.com/cocodas/prier-backend/internal/transport/middleware"
	"github.com/cocodas/prier-backend/internal/transport/rest"
	"github.com/cocodas/prier-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects the
// stores, wires the HTTP API and serves it until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("scoring", cfg.Scoring.Strategy),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return err
		}
	}

	var rdb *goredis.Client
	if cfg.Cache.Enabled() {
		rdb, err = redis.NewClient(ctx, cfg.Cache)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
	} else {
		logger.InfoContext(ctx, "profile cache disabled")
	}

	m := metrics.New()
	svcs, err := NewServices(logger, cfg, pool, rdb, m)
	if err != nil {
		return err
	}

	if cfg.Scoring.RebuildOnStart {
		n, err := svcs.Project.RebuildAggregates(ctx)
		if err != nil {
			return fmt.Errorf("rebuild aggregates: %w", err)
		}
		m.AddRebuiltAggregates(n)
		logger.InfoContext(ctx, "score aggregates rebuilt", slog.Int("projects", n))
	}

	var cachePinger pinger
	if rdb != nil {
		cachePinger = svcs.ProfileCache
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()

	handler := NewHTTPHandler(logger, svcs, HTTPDeps{
		DB:      pool,
		Cache:   cachePinger,
		Metrics: m,
		Limiter: limiter,
		CORS:    cfg.CORS,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// HTTPDeps are the non-service collaborators of the HTTP stack.
type HTTPDeps struct {
	DB      pinger
	Cache   pinger // nil when the profile cache is disabled
	Metrics *metrics.Metrics
	Limiter *middleware.RateLimiter
	CORS    config.CORSConfig
}

// NewHTTPHandler mounts the REST routes behind the middleware chain.
func NewHTTPHandler(logger *slog.Logger, svcs *Services, deps HTTPDeps) http.Handler {
	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(deps.DB, deps.Cache, Version),
		Projects: rest.NewProjectHandler(svcs.Project, logger),
		Comments: rest.NewCommentHandler(svcs.Comment, logger),
		Users:    rest.NewUserHandler(svcs.Profile, logger),
		Auth:     rest.NewAuthHandler(svcs.Auth, logger),
		Metrics:  deps.Metrics.Handler(),
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		deps.Metrics.Instrument,
		middleware.Logger(logger),
		middleware.CORS(deps.CORS),
		deps.Limiter.Limit(),
		middleware.Auth(svcs.Auth),
		middleware.Loaders(svcs.Profile),
	)(router)
}

func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}
