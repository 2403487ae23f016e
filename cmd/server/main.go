// Command server runs the LexiFusion HTTP API. It loads configuration
// from CONFIG_PATH (YAML) and the environment, applies migrations, and
// serves until SIGINT or SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/lexifusion/lexifusion-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
