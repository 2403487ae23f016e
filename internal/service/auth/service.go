// Package auth implements anonymous device registration and profile
// management. A device id is the only credential: the first registration
// creates the user, later ones log the same device back in.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByDeviceID(ctx context.Context, deviceID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, nickname, email *string) (*domain.User, error)
	TouchLastActive(ctx context.Context, id uuid.UUID) error
}

// statsRepo supplies the per-user discovery counters shown on the profile.
type statsRepo interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	CountFavorites(ctx context.Context, userID uuid.UUID) (int, error)
}

// jwtManager defines the JWT token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, deviceID string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	stats statsRepo
	jwt   jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, stats statsRepo, jwt jwtManager) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		stats: stats,
		jwt:   jwt,
	}
}
