// internal/app/features/api/near.go
package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/storemap/internal/app/system/geo"
	"github.com/dalemusser/storemap/internal/app/system/jsonresp"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
)

// HandleNear answers proximity queries with the stores within 10 km of
// the given point, closest first. Coordinates are longitude-first; a
// transposed pair is rejected rather than silently searching the wrong
// hemisphere.
// GET /api/stores/near?lng=-92.32&lat=38.95
func (h *Handler) HandleNear(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	lng, lat, err := geo.ParseLngLat(r.URL.Query().Get("lng"), r.URL.Query().Get("lat"))
	if err != nil {
		jsonresp.Error(w, http.StatusBadRequest, "lng and lat must be valid coordinates, longitude first")
		return
	}

	stores, err := h.Stores.Near(ctx, lng, lat)
	if err != nil {
		h.Log.Error("near query failed",
			zap.Float64("lng", lng),
			zap.Float64("lat", lat),
			zap.Error(err))
		jsonresp.Error(w, http.StatusInternalServerError, "query failed")
		return
	}

	jsonresp.OK(w, stores)
}
