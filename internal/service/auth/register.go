package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// RegisterOrLogin registers a device or logs an existing one back in.
// New devices get a fresh anonymous user; known devices get their last-active
// time bumped. Either way a new access token is issued.
func (s *Service) RegisterOrLogin(ctx context.Context, deviceID string) (*AuthResult, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, domain.NewValidationError("deviceId", "must not be empty")
	}

	user, err := s.users.GetByDeviceID(ctx, deviceID)
	isNew := false
	switch {
	case err == nil:
		if err := s.users.TouchLastActive(ctx, user.ID); err != nil {
			s.log.WarnContext(ctx, "failed to bump last active time",
				slog.String("user_id", user.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	case errors.Is(err, domain.ErrNotFound):
		user, err = s.users.Create(ctx, &domain.User{DeviceID: deviceID})
		if err != nil {
			// A concurrent registration for the same device may have won.
			if errors.Is(err, domain.ErrAlreadyExists) {
				user, err = s.users.GetByDeviceID(ctx, deviceID)
			}
			if err != nil {
				return nil, fmt.Errorf("create user: %w", err)
			}
		} else {
			isNew = true
		}
	default:
		return nil, fmt.Errorf("get user by device: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.DebugContext(ctx, "device registered",
		slog.String("user_id", user.ID.String()),
		slog.Bool("is_new", isNew),
	)

	return &AuthResult{Token: token, User: user, IsNew: isNew}, nil
}
