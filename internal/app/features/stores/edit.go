// internal/app/features/stores/edit.go
package stores

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/storemap/internal/app/features/errors"
	storestore "github.com/dalemusser/storemap/internal/app/store/stores"
	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
	"github.com/dalemusser/storemap/internal/app/system/viewdata"
	"github.com/dalemusser/storemap/internal/domain/models"
)

// loadOwnedStore resolves {id}, loads the store, and confirms the session
// user owns it. It writes the error page itself and returns nil when the
// caller should stop.
func (h *Handler) loadOwnedStore(ctx context.Context, w http.ResponseWriter, r *http.Request) *models.Store {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "That store ID isn't valid.", "/stores")
		return nil
	}

	st, err := h.Stores.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			uierrors.RenderNotFound(w, r, "That store doesn't exist.", "/stores")
			return nil
		}
		h.ErrLog.LogServerError(w, r, "loading store failed", err, "A database error occurred.", "/stores")
		return nil
	}

	su, _ := auth.CurrentUser(r)
	if err := ConfirmOwner(st, su); err != nil {
		uierrors.RenderForbidden(w, r, "You must own a store in order to edit it.", "/store/"+st.Slug)
		return nil
	}
	return st
}

// ServeEdit renders the store form pre-filled for the owner.
// GET /stores/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	st := h.loadOwnedStore(ctx, w, r)
	if st == nil {
		return
	}

	form := storeForm{
		Name:        st.Name,
		Description: st.Description,
		Address:     st.Location.Address,
		Lng:         trimFloat(st.Location.Lng()),
		Lat:         trimFloat(st.Location.Lat()),
		Tags:        st.Tags,
	}
	data := formVM{
		Base:       viewdata.New(w, r, h.SessionMgr, h.SiteName, "Edit "+st.Name),
		Form:       form,
		TagChoices: TagChoices,
		Checked:    checkedTags(st.Tags),
		Photo:      st.Photo,
		EditID:     st.ID.Hex(),
	}
	templates.Render(w, r, "store_form", data)
}

// HandleUpdate applies the submitted form to an owned store.
// POST /stores/{id}/edit
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	st := h.loadOwnedStore(ctx, w, r)
	if st == nil {
		return
	}

	form, point, errs := parseStoreForm(r)
	if len(errs) > 0 {
		h.renderFormErrors(w, r, form, errs, st.Photo, st.ID.Hex())
		return
	}

	upd := storestore.Update{
		Name:        form.Name,
		Description: sanitizer.Sanitize(form.Description),
		Tags:        form.Tags,
		Location:    point,
	}

	photo, err := h.Photos.Save(r, "photo")
	if err != nil {
		if err == ErrBadPhotoType {
			h.renderFormErrors(w, r, form, []string{"That photo type isn't allowed. Use a JPEG, PNG or GIF."}, st.Photo, st.ID.Hex())
			return
		}
		h.ErrLog.LogServerError(w, r, "saving store photo failed", err, "Could not save that photo.", "/stores")
		return
	}
	if photo != "" {
		upd.Photo = &photo
	}

	updated, err := h.Stores.ApplyUpdate(ctx, st.ID, upd)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "updating store failed", err, "A database error occurred.", "/stores")
		return
	}

	h.Log.Info("store updated", zap.String("slug", updated.Slug))

	h.SessionMgr.Flash(w, r, auth.FlashSuccess,
		fmt.Sprintf("Successfully updated %s.", updated.Name))
	http.Redirect(w, r, "/store/"+updated.Slug, http.StatusSeeOther)
}

// trimFloat renders a coordinate without trailing zeros so the form shows
// what was typed, not -122.400000.
func trimFloat(f float64) string {
	s := fmt.Sprintf("%.7f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
