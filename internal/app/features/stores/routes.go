// internal/app/features/stores/routes.go
package stores

import (
	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/storemap/internal/app/system/auth"
)

// Routes serves the store list and owner edits. Mounted at /stores.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/page/{page}", h.ServeList)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleUpdate)
	})

	return r
}

// ViewRoutes serves single store pages. Mounted at /store.
func ViewRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{slug}", h.ServeStore)
	return r
}

// AddRoutes serves the add-store form. Mounted at /add.
func AddRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeAdd)
		pr.Post("/", h.HandleCreate)
	})
	return r
}

// TopRoutes serves the top-rated list. Mounted at /top.
func TopRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeTop)
	return r
}

// MapRoutes serves the map page. Mounted at /map.
func MapRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeMap)
	return r
}

// HeartsRoutes serves the hearted-stores page. Mounted at /hearts.
func HeartsRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeHearts)
	})
	return r
}
