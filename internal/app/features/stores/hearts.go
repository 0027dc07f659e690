// internal/app/features/stores/hearts.go
package stores

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
	"github.com/dalemusser/storemap/internal/app/system/viewdata"
)

// ServeHearts renders the signed-in user's hearted stores.
// GET /hearts
func (h *Handler) ServeHearts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "session user missing or invalid", nil, "Please sign in again.", "/login")
		return
	}

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "loading user failed", err, "A database error occurred.", "/stores")
		return
	}

	stores, err := h.Stores.ByIDs(ctx, u.Hearts)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "loading hearted stores failed", err, "A database error occurred.", "/stores")
		return
	}

	hearts := make(map[string]bool, len(u.Hearts))
	for _, sid := range u.Hearts {
		hearts[sid.Hex()] = true
	}

	data := heartsVM{
		Base:   viewdata.New(w, r, h.SessionMgr, h.SiteName, "Hearted Stores"),
		Stores: stores,
		Hearts: hearts,
	}
	templates.Render(w, r, "store_hearts", data)
}
