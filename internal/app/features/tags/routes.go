// internal/app/features/tags/routes.go
package tags

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeTags)
	r.Get("/{tag}", h.ServeTags)
	return r
}
