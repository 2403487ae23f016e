package rest

import "net/http"

// Handlers groups the REST handlers wired into the router.
type Handlers struct {
	Auth    *AuthHandler
	Words   *WordsHandler
	Themes  *ThemesHandler
	Fusions *FusionsHandler
	Health  *HealthHandler
}

// NewRouter builds the ServeMux with all API routes. Middleware is
// applied by the caller around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("GET /api/users/me", h.Auth.Me)
	mux.HandleFunc("PATCH /api/users/me", h.Auth.UpdateMe)

	mux.HandleFunc("GET /api/words", h.Words.List)
	mux.HandleFunc("GET /api/words/categories", h.Words.Categories)
	mux.HandleFunc("GET /api/words/random-pair", h.Words.RandomPair)
	mux.HandleFunc("GET /api/words/{id}", h.Words.Get)

	mux.HandleFunc("GET /api/themes", h.Themes.List)
	mux.HandleFunc("GET /api/themes/{id}", h.Themes.Get)
	mux.HandleFunc("GET /api/themes/{id}/fusions", h.Themes.Fusions)

	mux.HandleFunc("POST /api/fusions/resolve", h.Fusions.Resolve)
	mux.HandleFunc("POST /api/fusions/resolve-by-text", h.Fusions.ResolveByText)

	mux.HandleFunc("POST /api/discoveries", h.Fusions.RecordDiscovery)
	mux.HandleFunc("GET /api/discoveries", h.Fusions.ListDiscoveries)
	mux.HandleFunc("GET /api/discoveries/favorites", h.Fusions.ListFavorites)
	mux.HandleFunc("POST /api/discoveries/{id}/favorite", h.Fusions.ToggleFavorite)

	return mux
}
