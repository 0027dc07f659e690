// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"

	"github.com/dalemusser/storemap/internal/app/system/auth"
)

// Base is the view model shared by every HTML page: site chrome, the
// signed-in user, the CSRF field for forms, and any pending flashes.
// Page view models embed it.
type Base struct {
	SiteName     string
	Title        string
	IsLoggedIn   bool
	UserName     string
	UserGravatar string
	CurrentPath  string
	CSRFField    template.HTML
	Flashes      []auth.Flash
}

// New builds the base view model for a request. It drains pending
// flashes, which writes the session cookie, so call it before the
// template render starts writing the body.
func New(w http.ResponseWriter, r *http.Request, sm *auth.SessionManager, siteName, title string) Base {
	b := Base{
		SiteName:    siteName,
		Title:       title,
		CurrentPath: httpnav.CurrentPath(r),
		CSRFField:   csrf.TemplateField(r),
		Flashes:     sm.TakeFlashes(w, r),
	}
	if u, ok := auth.CurrentUser(r); ok {
		b.IsLoggedIn = true
		b.UserName = u.Name
		b.UserGravatar = u.Gravatar()
	}
	return b
}
