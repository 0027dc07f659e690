// internal/app/features/tags/templates.go
package tags

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "tags",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
