// internal/app/store/stores/storestore.go
package storestore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	reviewstore "github.com/dalemusser/storemap/internal/app/store/reviews"
	"github.com/dalemusser/storemap/internal/app/system/normalize"
	"github.com/dalemusser/storemap/internal/app/system/paging"
	"github.com/dalemusser/storemap/internal/app/system/slugify"
	"github.com/dalemusser/storemap/internal/domain/models"
)

// Query limits. Proximity is capped at 10 km and 10 rows; text search
// returns at most 5 relevance-ranked rows; the top list requires at least
// two reviews per store.
const (
	NearMaxDistanceMeters = 10000
	NearMaxResults        = 10
	SearchMaxResults      = 5
	TopMinReviews         = 2
	TopMaxResults         = 10
)

var (
	// ErrMissingName is returned when a store is created or renamed to an empty name.
	ErrMissingName = errors.New("store name is required")
	// ErrMissingAuthor is returned when a store is created without an owner.
	ErrMissingAuthor = errors.New("store author is required")
	// ErrBadLocation is returned when the coordinate pair is malformed.
	ErrBadLocation = errors.New("location must be a [longitude, latitude] pair")
	// ErrDuplicateSlug is returned when the unique slug index rejects an insert.
	ErrDuplicateSlug = errors.New("a store with this slug already exists")
)

// Store is the data access layer for the stores collection.
type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("stores")}
}

// Create inserts a new store after normalizing fields and deriving a
// unique slug from the name. The location type tag is forced to "Point"
// so a caller can never store an unindexable shape.
func (s *Store) Create(ctx context.Context, st models.Store) (models.Store, error) {
	st.ID = primitive.NewObjectID()
	st.Name = normalize.Name(st.Name)
	st.Tags = normalize.Tags(st.Tags)

	if st.Name == "" {
		return models.Store{}, ErrMissingName
	}
	if st.AuthorID.IsZero() {
		return models.Store{}, ErrMissingAuthor
	}
	if len(st.Location.Coordinates) != 2 {
		return models.Store{}, ErrBadLocation
	}
	st.Location.Type = "Point"

	slug, err := s.slugFor(ctx, st.Name, nil)
	if err != nil {
		return models.Store{}, err
	}
	st.Slug = slug

	if st.CreatedAt.IsZero() {
		st.CreatedAt = time.Now().UTC()
	}

	if _, err := s.c.InsertOne(ctx, st); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Store{}, ErrDuplicateSlug
		}
		return models.Store{}, err
	}
	return st, nil
}

// Update holds the mutable store fields. AuthorID and CreatedAt are
// immutable after creation and deliberately absent. A nil Photo keeps the
// existing filename.
type Update struct {
	Name        string
	Description string
	Tags        []string
	Location    models.Point
	Photo       *string
}

// ApplyUpdate mutates a store by ID and returns the updated document. The
// slug is regenerated when the name changes. Ownership is the caller's
// precondition; this layer only performs the write.
func (s *Store) ApplyUpdate(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Store, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Name = normalize.Name(upd.Name)
	if upd.Name == "" {
		return nil, ErrMissingName
	}
	if len(upd.Location.Coordinates) != 2 {
		return nil, ErrBadLocation
	}
	upd.Location.Type = "Point"

	set := bson.M{
		"name":        upd.Name,
		"description": upd.Description,
		"tags":        normalize.Tags(upd.Tags),
		"location":    upd.Location,
	}
	if upd.Photo != nil {
		set["photo"] = *upd.Photo
	}
	if upd.Name != current.Name {
		slug, err := s.slugFor(ctx, upd.Name, &id)
		if err != nil {
			return nil, err
		}
		set["slug"] = slug
	}

	var updated models.Store
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return &updated, nil
}

// GetByID loads a store by ObjectID. Returns mongo.ErrNoDocuments on a miss.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Store, error) {
	var st models.Store
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

// GetBySlug loads a store by slug and resolves its author and reviews.
// The population is part of the operation, not an option: every caller
// gets the author summary and the review list (with their authors inline).
func (s *Store) GetBySlug(ctx context.Context, slug string) (*models.Store, error) {
	var st models.Store
	if err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&st); err != nil {
		return nil, err
	}

	var author models.AuthorSummary
	err := s.db.Collection("users").FindOne(ctx,
		bson.M{"_id": st.AuthorID},
		options.FindOne().SetProjection(bson.M{"name": 1, "email": 1}),
	).Decode(&author)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, err
	}
	author.Gravatar = models.GravatarURL(author.Email)
	st.Author = author

	reviews, err := reviewstore.New(s.db).ForStore(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	st.Reviews = reviews

	return &st, nil
}

// List returns one page of stores sorted by creation time descending,
// plus the total store count. The page fetch and the count run
// concurrently; the caller gets both or an error.
func (s *Store) List(ctx context.Context, page int) ([]models.Store, int64, error) {
	var (
		stores []models.Store
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		opts := options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetSkip(paging.Skip(page)).
			SetLimit(paging.PageSize)
		cur, err := s.c.Find(gctx, bson.M{}, opts)
		if err != nil {
			return err
		}
		defer cur.Close(gctx)
		return cur.All(gctx, &stores)
	})

	g.Go(func() error {
		var err error
		total, err = s.c.CountDocuments(gctx, bson.M{})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return stores, total, nil
}

// ByTag returns stores carrying the tag. An empty tag matches every store
// that has at least one tag.
func (s *Store) ByTag(ctx context.Context, tag string) ([]models.Store, error) {
	filter := bson.M{"tags": bson.M{"$exists": true}}
	if tag != "" {
		filter = bson.M{"tags": tag}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var stores []models.Store
	if err := cur.All(ctx, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// TagCounts aggregates the distinct tags in use with per-tag counts,
// most-used first. Ties sort alphabetically so the sidebar is stable.
func (s *Store) TagCounts(ctx context.Context) ([]models.TagCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"tags": bson.M{"$exists": true}}}},
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.M{"_id": "$tags", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tags []models.TagCount
	if err := cur.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// Search runs a relevance-ranked $text search over the name+description
// index and returns at most SearchMaxResults stores, best match first,
// with the text score attached. An empty query returns no results without
// touching the database.
func (s *Store) Search(ctx context.Context, q string) ([]models.Store, error) {
	if q == "" {
		return []models.Store{}, nil
	}

	filter := bson.M{"$text": bson.M{"$search": q}}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}).
		SetLimit(SearchMaxResults)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	stores := []models.Store{}
	if err := cur.All(ctx, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// Near returns stores within NearMaxDistanceMeters of the given
// longitude-first point, nearest first (the index order breaks ties),
// projected down to the wire fields the map consumes.
func (s *Store) Near(ctx context.Context, lng, lat float64) ([]models.StoreProjection, error) {
	filter := bson.M{
		"location": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lng, lat},
				},
				"$maxDistance": NearMaxDistanceMeters,
			},
		},
	}
	opts := options.Find().
		SetProjection(bson.M{"_id": 0, "slug": 1, "name": 1, "description": 1, "location": 1, "photo": 1}).
		SetLimit(NearMaxResults)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	stores := []models.StoreProjection{}
	if err := cur.All(ctx, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// TopRated joins stores to their reviews, keeps stores with at least
// TopMinReviews reviews, and ranks them by average rating descending.
func (s *Store) TopRated(ctx context.Context) ([]models.RatedStore, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "reviews",
			"localField":   "_id",
			"foreignField": "store_id",
			"as":           "reviews",
		}}},
		// reviews.1 exists ⇔ at least two reviews.
		{{Key: "$match", Value: bson.M{"reviews.1": bson.M{"$exists": true}}}},
		{{Key: "$project", Value: bson.M{
			"name":           1,
			"slug":           1,
			"photo":          1,
			"review_count":   bson.M{"$size": "$reviews"},
			"average_rating": bson.M{"$avg": "$reviews.rating"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "average_rating", Value: -1}}}},
		{{Key: "$limit", Value: TopMaxResults}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rated []models.RatedStore
	if err := cur.All(ctx, &rated); err != nil {
		return nil, err
	}
	return rated, nil
}

// ByIDs returns the stores whose IDs appear in the given set, for the
// hearted-stores page.
func (s *Store) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Store, error) {
	if len(ids) == 0 {
		return []models.Store{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	stores := []models.Store{}
	if err := cur.All(ctx, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// slugFor derives the unique slug for a name, appending a numeric suffix
// when the base (or a numbered variant) is already taken. exclude skips
// the store being renamed so it does not collide with itself.
func (s *Store) slugFor(ctx context.Context, name string, exclude *primitive.ObjectID) (string, error) {
	base := slugify.Make(name)

	filter := bson.M{"slug": primitive.Regex{Pattern: slugify.Pattern(base)}}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}

	opts := options.Find().SetProjection(bson.M{"slug": 1, "_id": 0})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return "", err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Slug string `bson:"slug"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return "", err
	}

	taken := make([]string, 0, len(rows))
	for _, r := range rows {
		taken = append(taken, r.Slug)
	}
	return slugify.Next(base, taken), nil
}
