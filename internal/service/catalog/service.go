// Package catalog implements read operations over the word and theme
// catalog: search, category breakdown, random pair picking, and themed
// packs.
package catalog

import (
	"context"
	"log/slog"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Word, error)
	Find(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
	Random(ctx context.Context, category *domain.Category, n int) ([]domain.Word, error)
}

type themeRepo interface {
	ListActive(ctx context.Context) ([]domain.ThemeSummary, error)
	GetByID(ctx context.Context, id string) (*domain.Theme, error)
}

type ruleRepo interface {
	ListByTheme(ctx context.Context, themeID string) ([]domain.FusionRule, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the catalog business logic.
type Service struct {
	log        *slog.Logger
	words      wordRepo
	themes     themeRepo
	rules      ruleRepo
	maxResults int
}

// NewService creates a new Catalog service.
func NewService(logger *slog.Logger, words wordRepo, themes themeRepo, rules ruleRepo) *Service {
	return &Service{
		log:        logger.With("service", "catalog"),
		words:      words,
		themes:     themes,
		rules:      rules,
		maxResults: defaultWordLimit,
	}
}

// SetMaxSearchResults overrides the search result cap.
func (s *Service) SetMaxSearchResults(n int) {
	if n > 0 {
		s.maxResults = n
	}
}

// clampLimit ensures a limit is within (0, max], defaulting from 0 to defaultVal.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}
