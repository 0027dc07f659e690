// internal/app/store/reviews/reviewstore.go
package reviewstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/storemap/internal/domain/models"
)

var (
	// ErrMissingText is returned when a review has no body.
	ErrMissingText = errors.New("review text is required")
	// ErrBadRating is returned when the rating falls outside 1..5.
	ErrBadRating = errors.New("rating must be between 1 and 5")
	// ErrMissingAuthor is returned when a review has no author.
	ErrMissingAuthor = errors.New("review author is required")
	// ErrMissingStore is returned when a review has no store.
	ErrMissingStore = errors.New("review store is required")
)

// Store is the data access layer for the reviews collection.
type Store struct {
	c     *mongo.Collection
	users *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:     db.Collection("reviews"),
		users: db.Collection("users"),
	}
}

// Add inserts a review after validating its required fields.
func (s *Store) Add(ctx context.Context, r models.Review) (models.Review, error) {
	if r.AuthorID.IsZero() {
		return models.Review{}, ErrMissingAuthor
	}
	if r.StoreID.IsZero() {
		return models.Review{}, ErrMissingStore
	}
	if r.Text == "" {
		return models.Review{}, ErrMissingText
	}
	if r.Rating < 1 || r.Rating > 5 {
		return models.Review{}, ErrBadRating
	}

	r.ID = primitive.NewObjectID()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Review{}, err
	}
	return r, nil
}

// ForStore returns a store's reviews newest first, each with its author
// summary resolved via a $lookup on the users collection. Reviews whose
// author has been deleted are kept with an empty author.
func (s *Store) ForStore(ctx context.Context, storeID primitive.ObjectID) ([]models.ReviewWithAuthor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"store_id": storeID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "author_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"author_id":    1,
			"store_id":     1,
			"text":         1,
			"rating":       1,
			"created_at":   1,
			"author._id":   1,
			"author.name":  1,
			"author.email": 1,
		}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reviews := []models.ReviewWithAuthor{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	for i := range reviews {
		if reviews[i].Author.Email != "" {
			reviews[i].Author.Gravatar = models.GravatarURL(reviews[i].Author.Email)
		}
	}
	return reviews, nil
}
