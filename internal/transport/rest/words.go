package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
	"github.com/lexifusion/lexifusion-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by WordsHandler and
// ThemesHandler.
type catalogService interface {
	GetWord(ctx context.Context, id string) (*domain.Word, error)
	FindWords(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	Categories(ctx context.Context) ([]catalog.CategoryBucket, error)
	RandomPair(ctx context.Context, category *domain.Category) (catalog.RandomPair, error)
	ListThemes(ctx context.Context) ([]domain.ThemeSummary, error)
	GetTheme(ctx context.Context, id string) (*catalog.ThemeDetail, error)
	ThemeFusions(ctx context.Context, themeID string) ([]domain.FusionRule, error)
}

// WordsHandler serves the word catalog endpoints.
type WordsHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc catalogService, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{svc: svc, log: logger.With("handler", "words")}
}

type categoryBucketResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type randomPairResponse struct {
	WordA wordResponse `json:"wordA"`
	WordB wordResponse `json:"wordB"`
}

// List handles GET /api/words?q=&category=&theme=&limit=.
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.WordFilter{Query: q.Get("q")}
	if v := q.Get("category"); v != "" {
		c := domain.Category(v)
		filter.Category = &c
	}
	if v := q.Get("theme"); v != "" {
		filter.ThemeID = &v
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = limit
	}

	words, err := h.svc.FindWords(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"words": toWordResponses(words)})
}

// Get handles GET /api/words/{id}.
func (h *WordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	word, err := h.svc.GetWord(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(*word))
}

// Categories handles GET /api/words/categories.
func (h *WordsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.svc.Categories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]categoryBucketResponse, len(buckets))
	for i, b := range buckets {
		out[i] = categoryBucketResponse{ID: b.ID, Name: b.Name, Count: b.Count}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

// RandomPair handles GET /api/words/random-pair?category=.
func (h *WordsHandler) RandomPair(w http.ResponseWriter, r *http.Request) {
	var category *domain.Category
	if v := r.URL.Query().Get("category"); v != "" {
		c := domain.Category(v)
		category = &c
	}

	pair, err := h.svc.RandomPair(r.Context(), category)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, randomPairResponse{
		WordA: toWordResponse(pair.WordA),
		WordB: toWordResponse(pair.WordB),
	})
}
