package auth

import "github.com/lexifusion/lexifusion-backend/internal/domain"

// AuthResult contains the token and user returned after registration.
type AuthResult struct {
	Token string
	User  *domain.User
	IsNew bool
}

// Profile is the current user with aggregate discovery counters.
type Profile struct {
	User           *domain.User
	DiscoveryCount int
	FavoriteCount  int
}
