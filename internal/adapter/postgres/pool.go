package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cocodas/prier-backend/internal/config"
)

const applicationName = "prier-backend"

// NewPool opens the connection pool described by cfg and pings it, so a bad
// DSN fails at startup. Statements slower than cfg.SlowQueryThreshold are
// logged at Warn; a zero threshold turns that off.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}
	if cfg.SlowQueryThreshold > 0 {
		poolCfg.ConnConfig.Tracer = newSlowQueryTracer(log, cfg.SlowQueryThreshold)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// ---------------------------------------------------------------------------
// Slow query log
// ---------------------------------------------------------------------------

type queryStartKey struct{}

type queryStart struct {
	sql string
	at  time.Time
}

type slowQueryTracer struct {
	log       *slog.Logger
	threshold time.Duration
	now       func() time.Time
}

func newSlowQueryTracer(log *slog.Logger, threshold time.Duration) *slowQueryTracer {
	return &slowQueryTracer{
		log:       log.With("component", "postgres"),
		threshold: threshold,
		now:       time.Now,
	}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{sql: data.SQL, at: t.now()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}

	elapsed := t.now().Sub(start.at)
	if elapsed < t.threshold {
		return
	}

	attrs := []slog.Attr{
		slog.String("sql", start.sql),
		slog.Duration("duration", elapsed),
		slog.Int64("rows", data.CommandTag.RowsAffected()),
	}
	if data.Err != nil {
		attrs = append(attrs, slog.String("error", data.Err.Error()))
	}
	t.log.LogAttrs(ctx, slog.LevelWarn, "slow query", attrs...)
}
