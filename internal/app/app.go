// Package app wires configuration, logging, storage, services, and the
// HTTP transport into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lexifusion/lexifusion-backend/internal/adapter/postgres"
	discoveryrepo "github.com/lexifusion/lexifusion-backend/internal/adapter/postgres/discovery"
	rulerepo "github.com/lexifusion/lexifusion-backend/internal/adapter/postgres/fusionrule"
	themerepo "github.com/lexifusion/lexifusion-backend/internal/adapter/postgres/theme"
	userrepo "github.com/lexifusion/lexifusion-backend/internal/adapter/postgres/user"
	wordrepo "github.com/lexifusion/lexifusion-backend/internal/adapter/postgres/word"
	"github.com/lexifusion/lexifusion-backend/internal/adapter/provider/deepseek"
	authjwt "github.com/lexifusion/lexifusion-backend/internal/auth"
	"github.com/lexifusion/lexifusion-backend/internal/config"
	fusioncore "github.com/lexifusion/lexifusion-backend/internal/fusion"
	authsvc "github.com/lexifusion/lexifusion-backend/internal/service/auth"
	catalogsvc "github.com/lexifusion/lexifusion-backend/internal/service/catalog"
	fusionsvc "github.com/lexifusion/lexifusion-backend/internal/service/fusion"
	"github.com/lexifusion/lexifusion-backend/internal/transport/middleware"
	"github.com/lexifusion/lexifusion-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, runs migrations, builds the service graph, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("ai_enabled", cfg.AI.Enabled()),
	)

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	words := wordrepo.New(pool)
	themes := themerepo.New(pool)
	rules := rulerepo.New(pool)
	discoveries := discoveryrepo.New(pool)
	users := userrepo.New(pool)

	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	catalogService := catalogsvc.NewService(logger, words, themes, rules)
	catalogService.SetMaxSearchResults(cfg.Catalog.MaxSearchResults)
	authService := authsvc.NewService(logger, users, discoveries, jwtManager)
	fusionService := fusionsvc.NewService(logger, rules, words, discoveries, fusioncore.NewCache())

	if cfg.AI.Enabled() {
		var provider *deepseek.Provider
		if cfg.AI.BaseURL != "" {
			provider = deepseek.NewProviderWithURL(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, logger)
		} else {
			provider = deepseek.NewProvider(cfg.AI.APIKey, cfg.AI.Model, logger)
		}
		provider.SetTimeout(cfg.AI.Timeout)
		fusionService.SetAIProvider(provider)
	}

	mux := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Words:   rest.NewWordsHandler(catalogService, logger),
		Themes:  rest.NewThemesHandler(catalogService, logger),
		Fusions: rest.NewFusionsHandler(fusionService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(jwtManager),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
