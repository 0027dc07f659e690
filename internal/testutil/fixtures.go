package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/dalemusser/storemap/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given name and email. The
// password is always "secret123" hashed at the minimum cost so fixture
// creation stays fast.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash fixture password: %v", err)
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

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateStore creates a test store owned by the given author. The slug is
// taken verbatim; pass distinct slugs when a test inserts several stores.
func (f *Fixtures) CreateStore(ctx context.Context, name, slug string, authorID primitive.ObjectID) models.Store {
	f.t.Helper()

	st := models.Store{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Slug:        slug,
		Description: "A test store called " + name,
		Tags:        []string{"Family Friendly"},
		Location:    models.NewPoint(-122.4194, 37.7749),
		AuthorID:    authorID,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("stores").InsertOne(ctx, st); err != nil {
		f.t.Fatalf("failed to create test store: %v", err)
	}
	return st
}

// CreateStoreAt creates a test store at a specific longitude/latitude.
func (f *Fixtures) CreateStoreAt(ctx context.Context, name, slug string, authorID primitive.ObjectID, lng, lat float64) models.Store {
	f.t.Helper()

	st := models.Store{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Slug:      slug,
		Location:  models.NewPoint(lng, lat),
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("stores").InsertOne(ctx, st); err != nil {
		f.t.Fatalf("failed to create test store: %v", err)
	}
	return st
}

// CreateReview creates a test review of a store.
func (f *Fixtures) CreateReview(ctx context.Context, storeID, authorID primitive.ObjectID, rating int, text string) models.Review {
	f.t.Helper()

	r := models.Review{
		ID:        primitive.NewObjectID(),
		AuthorID:  authorID,
		StoreID:   storeID,
		Text:      text,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("reviews").InsertOne(ctx, r); err != nil {
		f.t.Fatalf("failed to create test review: %v", err)
	}
	return r
}
