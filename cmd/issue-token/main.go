// Command issue-token prints an access token for an existing user. Login
// happens outside this service; the tool exists for local development and
// smoke tests.
//
// Usage:
//
//	issue-token --user=4f5c0d0e-...
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/cocodas/prier-backend/internal/adapter/postgres"
	"github.com/cocodas/prier-backend/internal/app"
	"github.com/cocodas/prier-backend/internal/config"
)

func main() {
	rawID := flag.String("user", "", "id of the user to issue a token for")
	configPath := flag.String("config", "", "path to config file (default: CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	userID, err := uuid.Parse(*rawID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --user=<uuid>")
		os.Exit(1)
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svcs, err := app.NewServices(logger, cfg, pool, nil, nil)
	if err != nil {
		log.Fatalf("wire services: %v", err)
	}

	token, err := svcs.Auth.IssueToken(ctx, userID)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
