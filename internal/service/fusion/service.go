// Package fusion implements the fusion resolution business logic: the
// three-tier pipeline (exact rule, AI generation, deterministic fallback)
// plus the discovery ledger built on top of it.
package fusion

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
	"github.com/lexifusion/lexifusion-backend/internal/fusion"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ruleRepo interface {
	GetByPair(ctx context.Context, wordAID, wordBID string) (*domain.FusionRule, error)
	GetByID(ctx context.Context, id string) (*domain.FusionRule, error)
}

type wordRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Word, error)
}

type discoveryRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Discovery, error)
	GetByPair(ctx context.Context, userID uuid.UUID, wordAID, wordBID string) (*domain.Discovery, error)
	Create(ctx context.Context, d *domain.Discovery) (*domain.Discovery, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Discovery, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]domain.Discovery, error)
	SetFavorite(ctx context.Context, userID, id uuid.UUID, favorite bool) error
}

type aiProvider interface {
	FuseWords(ctx context.Context, wordA, wordB domain.WordRef) ([]fusion.Candidate, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements fusion resolution and discovery tracking.
type Service struct {
	log         *slog.Logger
	rules       ruleRepo
	words       wordRepo
	discoveries discoveryRepo
	cache       *fusion.Cache
	ai          aiProvider
}

// NewService creates a new Fusion service. The AI provider is optional and
// injected separately via SetAIProvider; without one, resolution degrades
// to exact rules and the deterministic generator.
func NewService(
	logger *slog.Logger,
	rules ruleRepo,
	words wordRepo,
	discoveries discoveryRepo,
	cache *fusion.Cache,
) *Service {
	return &Service{
		log:         logger.With("service", "fusion"),
		rules:       rules,
		words:       words,
		discoveries: discoveries,
		cache:       cache,
	}
}

// SetAIProvider injects the optional AI fusion provider.
func (s *Service) SetAIProvider(p aiProvider) {
	s.ai = p
}
