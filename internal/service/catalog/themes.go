package catalog

import (
	"context"
	"fmt"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// ListThemes returns all active themes, ordered by their sort position,
// with word and fusion counts.
func (s *Service) ListThemes(ctx context.Context) ([]domain.ThemeSummary, error) {
	themes, err := s.themes.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	return themes, nil
}

// GetTheme returns one theme together with its words, ordered by word id.
func (s *Service) GetTheme(ctx context.Context, id string) (*ThemeDetail, error) {
	theme, err := s.themes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get theme %s: %w", id, err)
	}

	themeID := theme.ID
	words, err := s.words.Find(ctx, domain.WordFilter{ThemeID: &themeID, Limit: s.maxResults})
	if err != nil {
		return nil, fmt.Errorf("list theme words: %w", err)
	}

	return &ThemeDetail{Theme: *theme, Words: words}, nil
}

// ThemeFusions returns the curated fusion rules whose first word belongs to
// the theme.
func (s *Service) ThemeFusions(ctx context.Context, themeID string) ([]domain.FusionRule, error) {
	if _, err := s.themes.GetByID(ctx, themeID); err != nil {
		return nil, fmt.Errorf("get theme %s: %w", themeID, err)
	}

	rules, err := s.rules.ListByTheme(ctx, themeID)
	if err != nil {
		return nil, fmt.Errorf("list theme fusions: %w", err)
	}
	return rules, nil
}
