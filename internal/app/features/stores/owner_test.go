package stores

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dalemusser/storemap/internal/app/system/auth"
	"github.com/dalemusser/storemap/internal/domain/models"
)

func TestConfirmOwner(t *testing.T) {
	ownerID := primitive.NewObjectID()
	st := &models.Store{ID: primitive.NewObjectID(), AuthorID: ownerID}

	tests := []struct {
		name    string
		user    *auth.SessionUser
		wantErr bool
	}{
		{
			name: "owner passes",
			user: &auth.SessionUser{ID: ownerID.Hex(), Name: "Owner"},
		},
		{
			name:    "different user fails",
			user:    &auth.SessionUser{ID: primitive.NewObjectID().Hex(), Name: "Stranger"},
			wantErr: true,
		},
		{
			name:    "nil user fails",
			user:    nil,
			wantErr: true,
		},
		{
			name:    "malformed id fails",
			user:    &auth.SessionUser{ID: "not-an-object-id"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ConfirmOwner(st, tt.user)
			if tt.wantErr && err != ErrNotOwner {
				t.Errorf("got %v, want ErrNotOwner", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("got %v, want nil", err)
			}
		})
	}
}
