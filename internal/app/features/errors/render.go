// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/dalemusser/storemap/internal/app/system/auth"
)

func basePage(r *http.Request, title, msg, backURL, fallback string) pageData {
	name, signed := "", false
	if u, ok := auth.CurrentUser(r); ok {
		name, signed = u.Name, true
	}
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, fallback)
	}
	return pageData{
		Title:      title,
		IsLoggedIn: signed,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	}
}

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	data := basePage(r, "Sign in required", "Please sign in to continue.", backURL, "/login")
	w.WriteHeader(http.StatusUnauthorized)
	templates.Render(w, r, "error", data)
}

// RenderForbidden shows a friendly access error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	data := basePage(r, "Access denied", msg, backURL, "/")
	w.WriteHeader(http.StatusForbidden)
	templates.Render(w, r, "error", data)
}

// RenderNotFound shows the 404 page with a message.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	data := basePage(r, "Not found", msg, backURL, "/")
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error", data)
}

// RenderBadRequest shows a friendly "bad input" page with a message.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	data := basePage(r, "Bad request", msg, backURL, "/")
	w.WriteHeader(http.StatusBadRequest)
	templates.Render(w, r, "error", data)
}

// RenderServerError shows a friendly "something broke" page with a message.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	data := basePage(r, "Something went wrong", msg, backURL, "/")
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error", data)
}
