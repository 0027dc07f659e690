// internal/app/features/account/login.go
package account

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	userstore "github.com/dalemusser/storemap/internal/app/store/users"
	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
	"github.com/dalemusser/storemap/internal/app/system/viewdata"
)

// ServeLogin renders the sign-in form, carrying an optional return URL.
// GET /login
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	data := loginVM{
		Base:      viewdata.New(w, r, h.SessionMgr, h.SiteName, "Sign in"),
		ReturnURL: safeReturn(r.URL.Query().Get("return")),
	}
	templates.Render(w, r, "account_login", data)
}

// HandleLogin checks credentials and starts the session.
// POST /login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	ret := safeReturn(r.PostFormValue("return"))

	u, err := h.Users.Authenticate(ctx, email, password)
	if err != nil {
		if err == userstore.ErrBadCredentials {
			h.SessionMgr.Flash(w, r, auth.FlashError, "Invalid email or password.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "authenticating user failed", err, "A database error occurred.", "/login")
		return
	}

	if err := h.SessionMgr.SignIn(w, r, u); err != nil {
		h.ErrLog.LogServerError(w, r, "sign-in failed", err, "Could not start your session.", "/login")
		return
	}

	h.Log.Info("user signed in", zap.String("user", u.ID.Hex()))

	h.SessionMgr.Flash(w, r, auth.FlashSuccess, "You are now logged in!")
	if ret == "" {
		ret = "/"
	}
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// ServeLogout ends the session.
// GET /logout
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("sign-out failed", zap.Error(err))
	}
	h.SessionMgr.Flash(w, r, auth.FlashSuccess, "You are now logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// safeReturn keeps post-login redirects on this site. Anything that isn't
// a local path is dropped.
func safeReturn(ret string) string {
	if ret == "" {
		return ""
	}
	if !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		return ""
	}
	return ret
}
