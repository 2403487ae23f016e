package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

const defaultWordLimit = 500

// GetWord returns one catalog word by id.
func (s *Service) GetWord(ctx context.Context, id string) (*domain.Word, error) {
	w, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get word %s: %w", id, err)
	}
	return w, nil
}

// FindWords searches the catalog. The query matches word text or meaning,
// case-insensitively; an invalid category filter is rejected.
func (s *Service) FindWords(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	filter.Query = strings.ToLower(strings.TrimSpace(filter.Query))
	filter.Limit = clampLimit(filter.Limit, s.maxResults, s.maxResults)

	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown category")
	}

	words, err := s.words.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find words: %w", err)
	}
	return words, nil
}

// Categories returns the per-category word counts, largest first, with a
// synthetic "all" bucket totaling the catalog.
func (s *Service) Categories(ctx context.Context) ([]CategoryBucket, error) {
	counts, err := s.words.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	total := 0
	buckets := make([]CategoryBucket, 0, len(counts)+1)
	for _, c := range counts {
		total += c.Count
		buckets = append(buckets, CategoryBucket{ID: c.Category.String(), Name: c.Category.String(), Count: c.Count})
	}
	return append([]CategoryBucket{{ID: "all", Name: "全部", Count: total}}, buckets...), nil
}

// RandomPair picks two distinct random words, optionally within one
// category. Fails with a validation error when the (filtered) catalog
// holds fewer than two words.
func (s *Service) RandomPair(ctx context.Context, category *domain.Category) (RandomPair, error) {
	if category != nil && !category.IsValid() {
		return RandomPair{}, domain.NewValidationError("category", "unknown category")
	}

	words, err := s.words.Random(ctx, category, 2)
	if err != nil {
		return RandomPair{}, fmt.Errorf("pick random words: %w", err)
	}
	if len(words) < 2 {
		return RandomPair{}, domain.NewValidationError("catalog", "not enough words")
	}
	return RandomPair{WordA: words[0], WordB: words[1]}, nil
}
