// internal/domain/models/user.go
package models

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account holder.
//
// PasswordHash is a bcrypt hash; the plain password is never stored or
// serialized. ResetToken/ResetExpires are set only during the password
// reset flow and cleared once the reset completes. Hearts has set
// semantics: the same store never appears twice.
type User struct {
	ID           primitive.ObjectID   `bson:"_id" json:"id"`
	Email        string               `bson:"email" json:"email"`
	Name         string               `bson:"name" json:"name"`
	PasswordHash []byte               `bson:"password_hash" json:"-"`
	ResetToken   *string              `bson:"reset_token,omitempty" json:"-"`
	ResetExpires *time.Time           `bson:"reset_expires,omitempty" json:"-"`
	Hearts       []primitive.ObjectID `bson:"hearts,omitempty" json:"hearts"`
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at" json:"updated_at"`
}

// Gravatar returns the derived avatar URL for the user. Computed on read,
// never persisted.
func (u *User) Gravatar() string {
	return GravatarURL(u.Email)
}

// HasHeart reports whether the store is in the user's favorites set.
func (u *User) HasHeart(storeID primitive.ObjectID) bool {
	for _, id := range u.Hearts {
		if id == storeID {
			return true
		}
	}
	return false
}

// GravatarURL hashes an email against the gravatar service so templates
// never see the address itself.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://gravatar.com/avatar/%s?s=200", hex.EncodeToString(sum[:]))
}
