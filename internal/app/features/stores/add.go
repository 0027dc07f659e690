// internal/app/features/stores/add.go
package stores

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
	"github.com/dalemusser/storemap/internal/app/system/viewdata"
	"github.com/dalemusser/storemap/internal/domain/models"
)

// ServeAdd renders the empty store form.
// GET /add
func (h *Handler) ServeAdd(w http.ResponseWriter, r *http.Request) {
	data := formVM{
		Base:       viewdata.New(w, r, h.SessionMgr, h.SiteName, "Add Store"),
		TagChoices: TagChoices,
		Checked:    map[string]bool{},
	}
	templates.Render(w, r, "store_form", data)
}

// HandleCreate creates a store from the submitted form.
// POST /add
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	authorID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "session user missing or invalid", nil, "Please sign in again.", "/login")
		return
	}

	form, point, errs := parseStoreForm(r)
	if len(errs) > 0 {
		h.renderFormErrors(w, r, form, errs, "", "")
		return
	}

	photo, err := h.Photos.Save(r, "photo")
	if err != nil {
		if err == ErrBadPhotoType {
			h.renderFormErrors(w, r, form, []string{"That photo type isn't allowed. Use a JPEG, PNG or GIF."}, "", "")
			return
		}
		h.ErrLog.LogServerError(w, r, "saving store photo failed", err, "Could not save that photo.", "/add")
		return
	}

	created, err := h.Stores.Create(ctx, models.Store{
		Name:        form.Name,
		Description: sanitizer.Sanitize(form.Description),
		Tags:        form.Tags,
		Location:    point,
		Photo:       photo,
		AuthorID:    authorID,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "creating store failed", err, "A database error occurred.", "/add")
		return
	}

	h.Log.Info("store created",
		zap.String("slug", created.Slug),
		zap.String("author", authorID.Hex()))

	h.SessionMgr.Flash(w, r, auth.FlashSuccess,
		fmt.Sprintf("Successfully created %s. Care to leave a review?", created.Name))
	http.Redirect(w, r, "/store/"+created.Slug, http.StatusSeeOther)
}

func (h *Handler) renderFormErrors(w http.ResponseWriter, r *http.Request, form storeForm, errs []string, photo, editID string) {
	title := "Add Store"
	if editID != "" {
		title = "Edit " + form.Name
	}
	data := formVM{
		Base:       viewdata.New(w, r, h.SessionMgr, h.SiteName, title),
		Form:       form,
		FormErrors: errs,
		TagChoices: TagChoices,
		Checked:    checkedTags(form.Tags),
		Photo:      photo,
		EditID:     editID,
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "store_form", data)
}
