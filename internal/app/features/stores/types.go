// internal/app/features/stores/types.go
package stores

import (
	"github.com/dalemusser/storemap/internal/app/system/paging"
	"github.com/dalemusser/storemap/internal/app/system/viewdata"
	"github.com/dalemusser/storemap/internal/domain/models"
)

// TagChoices are the tags offered on the store form.
var TagChoices = []string{"Wifi", "Open Late", "Vegetarian", "Family Friendly", "Licensed"}

// storeForm carries the editable store fields from the HTML form.
// Coordinates arrive as strings and are parsed separately so a bad
// number gets its own error message.
type storeForm struct {
	Name        string   `label:"Name" validate:"required,max=120"`
	Description string   `label:"Description" validate:"max=2000"`
	Address     string   `label:"Address" validate:"required,max=250"`
	Lng         string   `label:"Longitude"`
	Lat         string   `label:"Latitude"`
	Tags        []string `label:"Tags"`
}

type listVM struct {
	viewdata.Base
	Stores []models.Store
	Meta   paging.Meta
	Hearts map[string]bool
}

type viewVM struct {
	viewdata.Base
	Store   *models.Store
	Hearted bool
	CanEdit bool
}

type formVM struct {
	viewdata.Base
	Form       storeForm
	FormErrors []string
	TagChoices []string
	Checked    map[string]bool
	Photo      string
	EditID     string // empty on the add form
}

type topVM struct {
	viewdata.Base
	Stores []models.RatedStore
}

type mapVM struct {
	viewdata.Base
}

type heartsVM struct {
	viewdata.Base
	Stores []models.Store
	Hearts map[string]bool
}
