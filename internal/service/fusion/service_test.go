package fusion

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
	"github.com/lexifusion/lexifusion-backend/internal/fusion"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockRuleRepo struct {
	GetByPairFunc func(ctx context.Context, wordAID, wordBID string) (*domain.FusionRule, error)
	GetByIDFunc   func(ctx context.Context, id string) (*domain.FusionRule, error)
}

func (m *mockRuleRepo) GetByPair(ctx context.Context, wordAID, wordBID string) (*domain.FusionRule, error) {
	if m.GetByPairFunc != nil {
		return m.GetByPairFunc(ctx, wordAID, wordBID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockRuleRepo) GetByID(ctx context.Context, id string) (*domain.FusionRule, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

type mockWordRepo struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Word, error)
}

func (m *mockWordRepo) GetByID(ctx context.Context, id string) (*domain.Word, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

type mockDiscoveryRepo struct {
	GetByIDFunc       func(ctx context.Context, userID, id uuid.UUID) (*domain.Discovery, error)
	GetByPairFunc     func(ctx context.Context, userID uuid.UUID, wordAID, wordBID string) (*domain.Discovery, error)
	CreateFunc        func(ctx context.Context, d *domain.Discovery) (*domain.Discovery, error)
	ListByUserFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Discovery, error)
	ListFavoritesFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Discovery, error)
	SetFavoriteFunc   func(ctx context.Context, userID, id uuid.UUID, favorite bool) error
}

func (m *mockDiscoveryRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Discovery, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockDiscoveryRepo) GetByPair(ctx context.Context, userID uuid.UUID, wordAID, wordBID string) (*domain.Discovery, error) {
	if m.GetByPairFunc != nil {
		return m.GetByPairFunc(ctx, userID, wordAID, wordBID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockDiscoveryRepo) Create(ctx context.Context, d *domain.Discovery) (*domain.Discovery, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	d.ID = uuid.New()
	return d, nil
}

func (m *mockDiscoveryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Discovery, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockDiscoveryRepo) ListFavorites(ctx context.Context, userID uuid.UUID) ([]domain.Discovery, error) {
	if m.ListFavoritesFunc != nil {
		return m.ListFavoritesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockDiscoveryRepo) SetFavorite(ctx context.Context, userID, id uuid.UUID, favorite bool) error {
	if m.SetFavoriteFunc != nil {
		return m.SetFavoriteFunc(ctx, userID, id, favorite)
	}
	return nil
}

type mockAIProvider struct {
	FuseWordsFunc func(ctx context.Context, wordA, wordB domain.WordRef) ([]fusion.Candidate, error)
	calls         int
}

func (m *mockAIProvider) FuseWords(ctx context.Context, wordA, wordB domain.WordRef) ([]fusion.Candidate, error) {
	m.calls++
	if m.FuseWordsFunc != nil {
		return m.FuseWordsFunc(ctx, wordA, wordB)
	}
	return nil, nil
}

// ===========================================================================
// Test fixtures
// ===========================================================================

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(rules *mockRuleRepo, words *mockWordRepo, discoveries *mockDiscoveryRepo) *Service {
	if rules == nil {
		rules = &mockRuleRepo{}
	}
	if words == nil {
		words = &mockWordRepo{}
	}
	if discoveries == nil {
		discoveries = &mockDiscoveryRepo{}
	}
	return NewService(newTestLogger(), rules, words, discoveries, fusion.NewCache())
}

func catalogWord(id, word, meaning string, cat domain.Category) *domain.Word {
	return &domain.Word{ID: id, Word: word, Meaning: meaning, Icon: "⭐", Category: cat}
}

func wordsByID(words ...*domain.Word) *mockWordRepo {
	index := make(map[string]*domain.Word, len(words))
	for _, w := range words {
		index[w.ID] = w
	}
	return &mockWordRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Word, error) {
			if w, ok := index[id]; ok {
				return w, nil
			}
			return nil, domain.ErrNotFound
		},
	}
}

func aiCandidate(result string) fusion.Candidate {
	return fusion.Candidate{
		Result:         result,
		Meaning:        "释义",
		Concept:        "画面",
		Association:    "联想",
		SuggestedWords: []string{"one", "two"},
		Example:        "An example sentence.",
		Icon:           "🌻",
		Type:           domain.FusionTypeCompound,
	}
}

func strPtr(s string) *string { return &s }
