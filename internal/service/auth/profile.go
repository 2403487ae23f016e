package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// GetProfile returns the current user with discovery counters.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	discoveries, err := s.stats.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count discoveries: %w", err)
	}
	favorites, err := s.stats.CountFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count favorites: %w", err)
	}

	return &Profile{
		User:           user,
		DiscoveryCount: discoveries,
		FavoriteCount:  favorites,
	}, nil
}

// UpdateProfile changes the user's nickname and/or email. Nil means "leave
// unchanged"; an empty string clears the field. Emails are lowercased.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, nickname, email *string) (*domain.User, error) {
	if nickname == nil && email == nil {
		return nil, domain.NewValidationError("profile", "nothing to update")
	}

	if email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*email))
		if normalized != "" && !strings.Contains(normalized, "@") {
			return nil, domain.NewValidationError("email", "invalid email address")
		}
		email = &normalized
	}
	if nickname != nil {
		trimmed := strings.TrimSpace(*nickname)
		nickname = &trimmed
	}

	user, err := s.users.UpdateProfile(ctx, userID, nickname, email)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}
