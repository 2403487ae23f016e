// Package seed loads the embedded word catalog, the unified theme, and
// the curated fusion rules into the database. It runs offline via
// cmd/seeder, not as part of the server.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

type themeRepo interface {
	Upsert(ctx context.Context, t domain.Theme) error
}

type wordRepo interface {
	Upsert(ctx context.Context, w domain.Word) error
}

type ruleRepo interface {
	Upsert(ctx context.Context, rule domain.FusionRule) error
}

// Runner seeds the catalog. Upserts make it idempotent: re-running
// refreshes data without touching user discoveries.
type Runner struct {
	log    *slog.Logger
	themes themeRepo
	words  wordRepo
	rules  ruleRepo
}

// NewRunner creates a seed Runner.
func NewRunner(logger *slog.Logger, themes themeRepo, words wordRepo, rules ruleRepo) *Runner {
	return &Runner{
		log:    logger.With("component", "seed"),
		themes: themes,
		words:  words,
		rules:  rules,
	}
}

// Run seeds the theme, then words, then rules. Word order matters: rules
// reference word ids through application-level pairing, so words must
// exist before any resolve traffic arrives, and the theme before words
// for the FK.
func (r *Runner) Run(ctx context.Context) error {
	words := CatalogWords()

	if err := r.themes.Upsert(ctx, lexiconTheme(len(words))); err != nil {
		return fmt.Errorf("seed theme: %w", err)
	}

	for _, w := range words {
		if err := r.words.Upsert(ctx, w); err != nil {
			return fmt.Errorf("seed word %s: %w", w.ID, err)
		}
	}
	r.log.Info("seeded words", slog.Int("count", len(words)))

	rules := PresetRules()
	for _, rule := range rules {
		if err := r.rules.Upsert(ctx, rule); err != nil {
			return fmt.Errorf("seed rule %s: %w", rule.ID, err)
		}
	}
	r.log.Info("seeded fusion rules", slog.Int("count", len(rules)))

	return nil
}
