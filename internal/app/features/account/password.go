// internal/app/features/account/password.go
package account

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/dalemusser/storemap/internal/app/store/users"
	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/app/system/inputval"
	"github.com/dalemusser/storemap/internal/app/system/mailer"
	"github.com/dalemusser/storemap/internal/app/system/timeouts"
	"github.com/dalemusser/storemap/internal/app/system/viewdata"
)

// HandleForgot stamps a reset token and emails the reset link.
// POST /account/forgot
func (h *Handler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := r.PostFormValue("email")

	u, token, err := h.Users.SetResetToken(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.SessionMgr.Flash(w, r, auth.FlashError, "No account with that email exists.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "setting reset token failed", err, "A database error occurred.", "/login")
		return
	}

	e := mailer.BuildPasswordResetEmail(mailer.ResetEmailData{
		SiteName:  h.SiteName,
		ResetURL:  h.BaseURL + "/account/reset/" + token,
		ExpiresIn: "1 hour",
	})
	e.To = u.Email
	if err := h.Mailer.Send(e); err != nil {
		h.ErrLog.LogServerError(w, r, "sending reset email failed", err, "Could not send the reset email. Try again soon.", "/login")
		return
	}

	h.Log.Info("password reset emailed", zap.String("user", u.ID.Hex()))

	h.SessionMgr.Flash(w, r, auth.FlashSuccess, "You have been emailed a password reset link.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ServeReset shows the new-password form if the token is still good.
// An invalid or expired token sends the visitor back to /login.
// GET /account/reset/{token}
func (h *Handler) ServeReset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	token := chi.URLParam(r, "token")

	if _, err := h.Users.GetByResetToken(ctx, token); err != nil {
		if err == userstore.ErrResetInvalid {
			h.SessionMgr.Flash(w, r, auth.FlashError, "Password reset is invalid or has expired.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "checking reset token failed", err, "A database error occurred.", "/login")
		return
	}

	data := resetVM{
		Base:  viewdata.New(w, r, h.SessionMgr, h.SiteName, "Reset your password"),
		Token: token,
	}
	templates.Render(w, r, "account_reset", data)
}

// HandleReset sets the new password and signs the user in.
// POST /account/reset/{token}
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	token := chi.URLParam(r, "token")

	u, err := h.Users.GetByResetToken(ctx, token)
	if err != nil {
		if err == userstore.ErrResetInvalid {
			h.SessionMgr.Flash(w, r, auth.FlashError, "Password reset is invalid or has expired.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "checking reset token failed", err, "A database error occurred.", "/login")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	form := resetForm{
		Password:        r.PostFormValue("password"),
		PasswordConfirm: r.PostFormValue("password_confirm"),
	}
	if res := inputval.Validate(form); res.HasErrors() {
		data := resetVM{
			Base:       viewdata.New(w, r, h.SessionMgr, h.SiteName, "Reset your password"),
			Token:      token,
			FormErrors: res.All(),
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		templates.Render(w, r, "account_reset", data)
		return
	}

	updated, err := h.Users.ResetPassword(ctx, u.ID, form.Password)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "resetting password failed", err, "A database error occurred.", "/login")
		return
	}

	if err := h.SessionMgr.SignIn(w, r, updated); err != nil {
		h.ErrLog.LogServerError(w, r, "sign-in after reset failed", err, "Your password was reset; please sign in.", "/login")
		return
	}

	h.Log.Info("password reset completed", zap.String("user", updated.ID.Hex()))

	h.SessionMgr.Flash(w, r, auth.FlashSuccess, "Nice! Your password has been reset! You are now logged in.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
