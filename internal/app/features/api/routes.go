// internal/app/features/api/routes.go
package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/storemap/internal/app/system/auth"
)

// Routes serves the JSON API. Mounted at /api, outside the CSRF-protected
// HTML group; the heart toggle still requires a signed-in session.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/search", h.HandleSearch)
	r.Get("/stores/near", h.HandleNear)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/stores/{id}/heart", h.HandleHeart)
	})

	return r
}
