// internal/app/features/stores/view.go
package stores

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	uierrors "github.com/dalemusser/storemap/internal/app/features/errors"
	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
	"github.com/dalemusser/storemap/internal/app/system/viewdata"
)

// ServeStore renders a single store with its author and reviews.
// GET /store/{slug}
func (h *Handler) ServeStore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	slug := chi.URLParam(r, "slug")

	st, err := h.Stores.GetBySlug(ctx, slug)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			uierrors.RenderNotFound(w, r, "That store doesn't exist.", "/stores")
			return
		}
		h.ErrLog.LogServerError(w, r, "loading store failed", err, "A database error occurred.", "/stores")
		return
	}

	canEdit := false
	if su, ok := auth.CurrentUser(r); ok {
		canEdit = ConfirmOwner(st, su) == nil
	}

	data := viewVM{
		Base:    viewdata.New(w, r, h.SessionMgr, h.SiteName, st.Name),
		Store:   st,
		Hearted: h.heartSet(ctx, r)[st.ID.Hex()],
		CanEdit: canEdit,
	}
	templates.Render(w, r, "store_view", data)
}
