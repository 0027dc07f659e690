// internal/app/features/account/register.go
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

// ServeRegister renders the registration form.
// GET /register
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	data := registerVM{
		Base: viewdata.New(w, r, h.SessionMgr, h.SiteName, "Register"),
	}
	templates.Render(w, r, "account_register", data)
}

// HandleRegister creates the account and signs the new user straight in.
// POST /register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/register")
		return
	}

	form := registerForm{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		PasswordConfirm: r.PostFormValue("password_confirm"),
	}

	if res := inputval.Validate(form); res.HasErrors() {
		h.renderRegisterErrors(w, r, form, res.All())
		return
	}

	u, err := h.Users.Create(ctx, form.Name, form.Email, form.Password)
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			h.renderRegisterErrors(w, r, form, []string{"An account with that email already exists."})
			return
		}
		h.ErrLog.LogServerError(w, r, "creating user failed", err, "A database error occurred.", "/register")
		return
	}

	if err := h.SessionMgr.SignIn(w, r, &u); err != nil {
		h.ErrLog.LogServerError(w, r, "sign-in after register failed", err, "Your account was created; please sign in.", "/login")
		return
	}

	h.Log.Info("user registered", zap.String("user", u.ID.Hex()))

	h.SessionMgr.Flash(w, r, auth.FlashSuccess, "Welcome to "+h.SiteName+"!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderRegisterErrors(w http.ResponseWriter, r *http.Request, form registerForm, errs []string) {
	form.Password = ""
	form.PasswordConfirm = ""
	data := registerVM{
		Base:       viewdata.New(w, r, h.SessionMgr, h.SiteName, "Register"),
		Form:       form,
		FormErrors: errs,
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "account_register", data)
}
