// internal/app/features/account/routes.go
package account

import (
	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/storemap/internal/app/system/auth"
)

// LoginRoutes serves sign-in and sign-out. Mounted at /login.
func LoginRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogin)
	r.Post("/", h.HandleLogin)
	return r
}

// RegisterRoutes serves registration. Mounted at /register.
func RegisterRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRegister)
	r.Post("/", h.HandleRegister)
	return r
}

// LogoutRoutes serves sign-out. Mounted at /logout.
func LogoutRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeLogout)
	})
	return r
}

// Routes serves the profile and password flows. Mounted at /account.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Password reset is for people who cannot sign in.
	r.Post("/forgot", h.HandleForgot)
	r.Get("/reset/{token}", h.ServeReset)
	r.Post("/reset/{token}", h.HandleReset)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeAccount)
		pr.Post("/", h.HandleAccount)
	})

	return r
}
