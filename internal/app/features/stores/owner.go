// internal/app/features/stores/owner.go
package stores

import (
	"errors"

	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/domain/models"
)

// ErrNotOwner is returned when someone other than the store's author
// tries to change it.
var ErrNotOwner = errors.New("you must own a store in order to edit it")

// ConfirmOwner checks that the session user is the store's author.
func ConfirmOwner(st *models.Store, u *auth.SessionUser) error {
	if u == nil {
		return ErrNotOwner
	}
	id, err := u.ObjectID()
	if err != nil {
		return ErrNotOwner
	}
	if st.AuthorID != id {
		return ErrNotOwner
	}
	return nil
}
