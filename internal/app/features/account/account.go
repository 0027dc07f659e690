// internal/app/features/account/account.go
package account

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	userstore "github.com/dalemusser/storemap/internal/app/store/users"
	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/inputval"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
	"github.com/dalemusser/storemap/internal/app/system/viewdata"
)

// ServeAccount renders the profile form pre-filled from the database.
// GET /account
func (h *Handler) ServeAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "session user missing or invalid", nil, "Please sign in again.", "/login")
		return
	}

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "loading user failed", err, "A database error occurred.", "/")
		return
	}

	data := accountVM{
		Base:     viewdata.New(w, r, h.SessionMgr, h.SiteName, "Your Account"),
		Form:     accountForm{Name: u.Name, Email: u.Email},
		Gravatar: u.Gravatar(),
	}
	templates.Render(w, r, "account_edit", data)
}

// HandleAccount updates name and email, then refreshes the session so the
// header reflects the change immediately.
// POST /account
func (h *Handler) HandleAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "session user missing or invalid", nil, "Please sign in again.", "/login")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/account")
		return
	}

	form := accountForm{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
	}

	if res := inputval.Validate(form); res.HasErrors() {
		h.renderAccountErrors(w, r, form, res.All())
		return
	}

	u, err := h.Users.UpdateProfile(ctx, id, form.Name, form.Email)
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			h.renderAccountErrors(w, r, form, []string{"An account with that email already exists."})
			return
		}
		h.ErrLog.LogServerError(w, r, "updating profile failed", err, "A database error occurred.", "/account")
		return
	}

	if err := h.SessionMgr.RefreshUser(w, r, u); err != nil {
		h.Log.Warn("session refresh failed", zap.Error(err))
	}

	h.SessionMgr.Flash(w, r, auth.FlashSuccess, "Updated the profile!")
	http.Redirect(w, r, "/account", http.StatusSeeOther)
}

func (h *Handler) renderAccountErrors(w http.ResponseWriter, r *http.Request, form accountForm, errs []string) {
	data := accountVM{
		Base:       viewdata.New(w, r, h.SessionMgr, h.SiteName, "Your Account"),
		Form:       form,
		FormErrors: errs,
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "account_edit", data)
}
