// Command rescore rebuilds every project's score aggregate from its comment
// rows and rewrites the displayed score with the configured strategy. It is
// intended to be run by hand or from cron after a data repair.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/cocodas/prier-backend/internal/adapter/postgres"
	"github.com/cocodas/prier-backend/internal/app"
	"github.com/cocodas/prier-backend/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: CONFIG_PATH or ./config.yaml)")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs, err := app.NewServices(logger, cfg, pool, nil, nil)
	if err != nil {
		logger.Error("wire services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	start := time.Now()
	n, err := svcs.Project.RebuildAggregates(ctx)
	if err != nil {
		logger.Error("rebuild failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("rebuild completed",
		slog.Int("projects", n),
		slog.String("strategy", cfg.Scoring.Strategy),
		slog.Duration("took", time.Since(start)),
	)
}
