// internal/app/features/api/search.go
package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/storemap/internal/app/system/jsonresp"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
)

// HandleSearch answers text search queries with a relevance-ranked JSON
// array. An empty q is answered with an empty array, no database trip.
// GET /api/search?q=coffee
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	q := r.URL.Query().Get("q")

	stores, err := h.Stores.Search(ctx, q)
	if err != nil {
		h.Log.Error("search failed", zap.String("q", q), zap.Error(err))
		jsonresp.Error(w, http.StatusInternalServerError, "search failed")
		return
	}

	jsonresp.OK(w, stores)
}
