// internal/app/features/stores/map.go
package stores

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/dalemusser/storemap/internal/app/system/viewdata"
)

// ServeMap renders the map page. The page itself is static; the browser
// fetches nearby stores from /api/stores/near as the map moves.
// GET /map
func (h *Handler) ServeMap(w http.ResponseWriter, r *http.Request) {
	data := mapVM{
		Base: viewdata.New(w, r, h.SessionMgr, h.SiteName, "Map"),
	}
	templates.Render(w, r, "store_map", data)
}
