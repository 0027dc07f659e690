// internal/app/features/stores/top.go
package stores

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/dalemusser/storemap/internal/app/system/timeouts"
	"github.com/dalemusser/storemap/internal/app/system/viewdata"
)

// ServeTop renders the best-reviewed stores.
// GET /top
func (h *Handler) ServeTop(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rated, err := h.Stores.TopRated(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "loading top stores failed", err, "A database error occurred.", "/stores")
		return
	}

	data := topVM{
		Base:   viewdata.New(w, r, h.SessionMgr, h.SiteName, "Top Stores"),
		Stores: rated,
	}
	templates.Render(w, r, "store_top", data)
}
