// internal/app/features/stores/list.go
package stores

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/paging"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
	"github.com/dalemusser/storemap/internal/app/system/viewdata"
)

// ServeList renders one page of stores, newest first.
// GET / , GET /stores , GET /stores/page/{page}
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page := paging.ParsePage(r)

	stores, total, err := h.Stores.List(ctx, page)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "listing stores failed", err, "A database error occurred.", "/")
		return
	}

	meta := paging.NewMeta(page, total)
	if meta.OutOfRange() {
		// Asking for page 99 of 3 sends you to the last real page rather
		// than a blank one. Happens when stores are deleted under you.
		last := meta.LastPage()
		h.SessionMgr.Flash(w, r, auth.FlashInfo,
			fmt.Sprintf("You asked for page %d. But that doesn't exist. So I put you on page %d.", page, last))
		http.Redirect(w, r, fmt.Sprintf("/stores/page/%d", last), http.StatusSeeOther)
		return
	}

	data := listVM{
		Base:   viewdata.New(w, r, h.SessionMgr, h.SiteName, "Stores"),
		Stores: stores,
		Meta:   meta,
		Hearts: h.heartSet(ctx, r),
	}
	templates.Render(w, r, "store_list", data)
}

// heartSet returns the signed-in user's hearted store IDs as a hex set
// for quick template lookups. Anonymous visitors get an empty set.
func (h *Handler) heartSet(ctx context.Context, r *http.Request) map[string]bool {
	hearts := map[string]bool{}
	su, ok := auth.CurrentUser(r)
	if !ok {
		return hearts
	}
	id, err := su.ObjectID()
	if err != nil {
		return hearts
	}
	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return hearts
	}
	for _, sid := range u.Hearts {
		hearts[sid.Hex()] = true
	}
	return hearts
}
