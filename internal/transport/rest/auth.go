package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
	"github.com/lexifusion/lexifusion-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	RegisterOrLogin(ctx context.Context, deviceID string) (*auth.AuthResult, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*auth.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, nickname, email *string) (*domain.User, error)
}

// AuthHandler serves device registration and profile endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	DeviceID string `json:"deviceId"`
}

type registerResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
	IsNew bool         `json:"isNew"`
}

type updateProfileRequest struct {
	Nickname *string `json:"nickname"`
	Email    *string `json:"email"`
}

// Register handles POST /api/auth/register. Registration is idempotent
// per device: a known device logs in, an unknown one creates a user.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.RegisterOrLogin(r.Context(), req.DeviceID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if result.IsNew {
		status = http.StatusCreated
	}
	writeJSON(w, status, registerResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
		IsNew: result.IsNew,
	})
}

// Me handles GET /api/users/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	profile, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

// UpdateMe handles PATCH /api/users/me.
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.UpdateProfile(r.Context(), userID, req.Nickname, req.Email)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}
