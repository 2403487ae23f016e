package rest

import (
	"log/slog"
	"net/http"
)

// ThemesHandler serves the theme pack endpoints.
type ThemesHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewThemesHandler creates a ThemesHandler.
func NewThemesHandler(svc catalogService, logger *slog.Logger) *ThemesHandler {
	return &ThemesHandler{svc: svc, log: logger.With("handler", "themes")}
}

type themeDetailResponse struct {
	themeResponse
	Words []wordResponse `json:"words"`
}

// List handles GET /api/themes.
func (h *ThemesHandler) List(w http.ResponseWriter, r *http.Request) {
	themes, err := h.svc.ListThemes(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]themeResponse, len(themes))
	for i, t := range themes {
		out[i] = toThemeSummaryResponse(t)
	}
	writeJSON(w, http.StatusOK, map[string]any{"themes": out})
}

// Get handles GET /api/themes/{id}.
func (h *ThemesHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetTheme(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, themeDetailResponse{
		themeResponse: toThemeResponse(detail.Theme),
		Words:         toWordResponses(detail.Words),
	})
}

// Fusions handles GET /api/themes/{id}/fusions.
func (h *ThemesHandler) Fusions(w http.ResponseWriter, r *http.Request) {
	rules, err := h.svc.ThemeFusions(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]ruleResponse, len(rules))
	for i, rule := range rules {
		out[i] = toRuleResponse(rule)
	}
	writeJSON(w, http.StatusOK, map[string]any{"fusions": out})
}
