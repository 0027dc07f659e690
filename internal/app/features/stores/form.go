// internal/app/features/stores/form.go
package stores

import (
	"net/http"

	"github.com/dalemusser/storemap/internal/app/system/geo"
	"github.com/dalemusser/storemap/internal/app/system/inputval"
	"github.com/dalemusser/storemap/internal/app/system/normalize"
	"github.com/dalemusser/storemap/internal/domain/models"
)

// parseStoreForm reads and validates the store form from a multipart
// request. It returns the form as submitted (for re-rendering), the
// parsed location, and any validation messages.
func parseStoreForm(r *http.Request) (storeForm, models.Point, []string) {
	var errs []string

	if err := r.ParseMultipartForm(photoMaxBytes); err != nil {
		return storeForm{}, models.Point{}, []string{"That form was too large or malformed."}
	}

	form := storeForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Address:     r.PostFormValue("address"),
		Lng:         r.PostFormValue("lng"),
		Lat:         r.PostFormValue("lat"),
		Tags:        normalize.Tags(r.PostForm["tags"]),
	}

	if res := inputval.Validate(form); res.HasErrors() {
		errs = append(errs, res.All()...)
	}

	lng, lat, err := geo.ParseLngLat(form.Lng, form.Lat)
	if err != nil {
		errs = append(errs, "You must supply a valid longitude and latitude. Longitude comes first.")
	}

	point := models.NewPoint(lng, lat)
	point.Address = form.Address
	return form, point, errs
}

// checkedTags marks which tag choices the form already has, for the
// checkbox state when a form re-renders.
func checkedTags(tags []string) map[string]bool {
	checked := make(map[string]bool, len(tags))
	for _, t := range tags {
		checked[t] = true
	}
	return checked
}
