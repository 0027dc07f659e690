// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/dalemusser/storemap/internal/app/system/normalize"
	"github.com/dalemusser/storemap/internal/domain/models"
)

// bcryptCost trades login latency for brute-force resistance.
const bcryptCost = 12

// ResetTokenTTL is how long a password-reset link stays valid.
const ResetTokenTTL = time.Hour

var (
	// ErrDuplicateEmail is returned when the unique email index rejects a write.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrBadCredentials covers both unknown email and wrong password so a
	// login response never reveals which one it was.
	ErrBadCredentials = errors.New("invalid email or password")
	// ErrMissingFields is returned when a registration lacks a required field.
	ErrMissingFields = errors.New("name, email and password are required")
	// ErrResetInvalid is returned when a reset token is unknown or expired.
	ErrResetInvalid = errors.New("password reset token is invalid or has expired")
)

// Store is the data access layer for the users collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create registers a new user. The email is normalized before storage so
// the unique index sees one canonical form, and the password is hashed
// here so a plaintext never crosses this boundary outward.
func (s *Store) Create(ctx context.Context, name, email, password string) (models.User, error) {
	name = normalize.Name(name)
	email = normalize.Email(email)
	if name == "" || email == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Hearts:       []primitive.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments on a miss.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail loads a user by normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Authenticate checks an email/password pair and returns the user on
// success. Unknown email and wrong password both map to ErrBadCredentials.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return u, nil
}

// UpdateProfile changes a user's name and email and returns the updated
// document. An email collision maps to ErrDuplicateEmail.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, email string) (*models.User, error) {
	name = normalize.Name(name)
	email = normalize.Email(email)
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}

	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":       name,
			"email":      email,
			"updated_at": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}

// ToggleHeart adds the store to the user's hearts when absent and removes
// it when present, returning the user as stored after the toggle.
// $addToSet and $pull make each direction idempotent on its own.
func (s *Store) ToggleHeart(ctx context.Context, userID, storeID primitive.ObjectID) (*models.User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	op := "$addToSet"
	if u.HasHeart(storeID) {
		op = "$pull"
	}

	var updated models.User
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{op: bson.M{"hearts": storeID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetResetToken stamps the user with a fresh random reset token expiring
// in ResetTokenTTL, and returns the user and the token. An unknown email
// surfaces as mongo.ErrNoDocuments; the caller decides what to reveal.
func (s *Store) SetResetToken(ctx context.Context, email string) (*models.User, string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return nil, "", err
	}
	token := hex.EncodeToString(buf)
	expires := time.Now().UTC().Add(ResetTokenTTL)

	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"email": normalize.Email(email)},
		bson.M{"$set": bson.M{
			"reset_token":   token,
			"reset_expires": expires,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// GetByResetToken loads the user holding an unexpired reset token.
// Unknown or expired tokens both return ErrResetInvalid.
func (s *Store) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{
		"reset_token":   token,
		"reset_expires": bson.M{"$gt": time.Now().UTC()},
	}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrResetInvalid
		}
		return nil, err
	}
	return &u, nil
}

// ResetPassword sets a new password hash and clears any reset token so a
// link can only be used once.
func (s *Store) ResetPassword(ctx context.Context, id primitive.ObjectID, password string) (*models.User, error) {
	if password == "" {
		return nil, ErrMissingFields
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	var u models.User
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":   bson.M{"password_hash": hash, "updated_at": time.Now().UTC()},
			"$unset": bson.M{"reset_token": "", "reset_expires": ""},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
