package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
	"github.com/lexifusion/lexifusion-backend/internal/service/fusion"
)

// fusionService defines the minimal interface needed by FusionsHandler.
type fusionService interface {
	ResolveByIDs(ctx context.Context, wordAID, wordBID string) ([]domain.FusionResult, error)
	ResolveByText(ctx context.Context, inputA, inputB fusion.TextWordInput) []domain.FusionResult
	RecordDiscovery(ctx context.Context, userID uuid.UUID, wordAID, wordBID string, result domain.FusionResult) (*domain.Discovery, error)
	ListDiscoveries(ctx context.Context, userID uuid.UUID) ([]fusion.DiscoveryView, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]fusion.DiscoveryView, error)
	ToggleFavorite(ctx context.Context, userID, discoveryID uuid.UUID) (bool, error)
}

// FusionsHandler serves fusion resolution and discovery endpoints.
type FusionsHandler struct {
	svc fusionService
	log *slog.Logger
}

// NewFusionsHandler creates a FusionsHandler.
func NewFusionsHandler(svc fusionService, logger *slog.Logger) *FusionsHandler {
	return &FusionsHandler{svc: svc, log: logger.With("handler", "fusions")}
}

type resolveRequest struct {
	WordAID string `json:"wordAId"`
	WordBID string `json:"wordBId"`
}

type textWordRequest struct {
	Word     string `json:"word"`
	Meaning  string `json:"meaning"`
	Category string `json:"category"`
}

type resolveByTextRequest struct {
	WordA textWordRequest `json:"wordA"`
	WordB textWordRequest `json:"wordB"`
}

// resolveResponse keeps the first result in a dedicated field so clients
// that only show one fusion need not index into the list.
type resolveResponse struct {
	Fusion  fusionResponse   `json:"fusion"`
	Fusions []fusionResponse `json:"fusions"`
}

type recordDiscoveryRequest struct {
	WordAID string         `json:"wordAId"`
	WordBID string         `json:"wordBId"`
	Fusion  fusionResponse `json:"fusion"`
}

// Resolve handles POST /api/fusions/resolve.
func (h *FusionsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.WordAID == "" || req.WordBID == "" {
		writeError(w, http.StatusBadRequest, "both word ids are required")
		return
	}

	results, err := h.svc.ResolveByIDs(r.Context(), req.WordAID, req.WordBID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := toFusionResponses(results)
	writeJSON(w, http.StatusOK, resolveResponse{Fusion: out[0], Fusions: out})
}

// ResolveByText handles POST /api/fusions/resolve-by-text, the chain
// fusion entry point where inputs are previous results rather than
// catalog words.
func (h *FusionsHandler) ResolveByText(w http.ResponseWriter, r *http.Request) {
	var req resolveByTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.WordA.Word == "" || req.WordB.Word == "" {
		writeError(w, http.StatusBadRequest, "both words are required")
		return
	}

	results := h.svc.ResolveByText(r.Context(),
		fusion.TextWordInput{Word: req.WordA.Word, Meaning: req.WordA.Meaning, Category: req.WordA.Category},
		fusion.TextWordInput{Word: req.WordB.Word, Meaning: req.WordB.Meaning, Category: req.WordB.Category},
	)

	out := toFusionResponses(results)
	writeJSON(w, http.StatusOK, resolveResponse{Fusion: out[0], Fusions: out})
}

// RecordDiscovery handles POST /api/discoveries.
func (h *FusionsHandler) RecordDiscovery(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req recordDiscoveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.WordAID == "" || req.WordBID == "" {
		writeError(w, http.StatusBadRequest, "both word ids are required")
		return
	}
	if req.Fusion.Result == "" {
		writeError(w, http.StatusBadRequest, "fusion result is required")
		return
	}

	d, err := h.svc.RecordDiscovery(r.Context(), userID, req.WordAID, req.WordBID, fromFusionRequest(req.Fusion))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":           d.ID.String(),
		"isFavorite":   d.IsFavorite,
		"discoveredAt": d.CreatedAt,
	})
}

// ListDiscoveries handles GET /api/discoveries.
func (h *FusionsHandler) ListDiscoveries(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	views, err := h.svc.ListDiscoveries(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"discoveries": toDiscoveryResponses(views)})
}

// ListFavorites handles GET /api/discoveries/favorites.
func (h *FusionsHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	views, err := h.svc.ListFavorites(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"discoveries": toDiscoveryResponses(views)})
}

// ToggleFavorite handles POST /api/discoveries/{id}/favorite.
func (h *FusionsHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	discoveryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid discovery id")
		return
	}

	isFavorite, err := h.svc.ToggleFavorite(r.Context(), userID, discoveryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"isFavorite": isFavorite})
}

func fromFusionRequest(f fusionResponse) domain.FusionResult {
	return domain.FusionResult{
		ID:             f.ID,
		From:           f.From,
		Result:         f.Result,
		Meaning:        f.Meaning,
		Type:           domain.NormalizeFusionType(f.Type),
		Icon:           f.Icon,
		Concept:        f.Concept,
		Association:    f.Association,
		SuggestedWords: f.SuggestedWords,
		Example:        f.Example,
		Etymology:      f.Etymology,
		MemoryTip:      f.MemoryTip,
		IsCreative:     f.IsCreative,
	}
}
