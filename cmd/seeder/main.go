// Command seeder populates the database with the embedded word catalog,
// the unified lexicon theme, and the curated fusion rules. It is
// idempotent and intended to be run offline, not as part of the server.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lexifusion/lexifusion-backend/internal/adapter/postgres"
	rulerepo "github.com/lexifusion/lexifusion-backend/internal/adapter/postgres/fusionrule"
	themerepo "github.com/lexifusion/lexifusion-backend/internal/adapter/postgres/theme"
	wordrepo "github.com/lexifusion/lexifusion-backend/internal/adapter/postgres/word"
	"github.com/lexifusion/lexifusion-backend/internal/app"
	"github.com/lexifusion/lexifusion-backend/internal/config"
	"github.com/lexifusion/lexifusion-backend/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		logger.Error("run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	runner := seed.NewRunner(logger, themerepo.New(pool), wordrepo.New(pool), rulerepo.New(pool))
	if err := runner.Run(ctx); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed")
}
