// internal/app/features/reviews/routes.go
package reviews

import (
	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/storemap/internal/app/system/auth"
)

// Routes serves review submission. Mounted at /reviews.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/{storeID}", h.HandleAdd)
	})
	return r
}
