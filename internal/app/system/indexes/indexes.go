// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureAll is called at startup. Index creation is idempotent; problems
// are aggregated so startup can fail fast with everything that is wrong.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureStores(ctx, db, logger); err != nil {
		problems = append(problems, "stores: "+err.Error())
	}
	if err := ensureUsers(ctx, db, logger); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureReviews(ctx, db, logger); err != nil {
		problems = append(problems, "reviews: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureStores(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return createAll(ctx, db.Collection("stores"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("slug_unique").SetUnique(true),
		},
		{
			// Compound text index backing $text relevance search.
			Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
			Options: options.Index().SetName("name_description_text"),
		},
		{
			// 2dsphere index backing $near proximity queries.
			Keys:    bson.D{{Key: "location", Value: "2dsphere"}},
			Options: options.Index().SetName("location_2dsphere"),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("tags"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	})
}

func ensureUsers(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return createAll(ctx, db.Collection("users"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			// Sparse: only users mid-reset carry a token.
			Keys:    bson.D{{Key: "reset_token", Value: 1}},
			Options: options.Index().SetName("reset_token").SetSparse(true),
		},
	})
}

func ensureReviews(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return createAll(ctx, db.Collection("reviews"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "store_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("store_created"),
		},
		{
			Keys:    bson.D{{Key: "author_id", Value: 1}},
			Options: options.Index().SetName("author"),
		},
	})
}

func createAll(ctx context.Context, coll *mongo.Collection, logger *zap.Logger, models []mongo.IndexModel) error {
	names, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		logger.Error("ensuring indexes failed",
			zap.String("collection", coll.Name()),
			zap.Error(err))
		return err
	}
	logger.Info("indexes ensured",
		zap.String("collection", coll.Name()),
		zap.Strings("names", names))
	return nil
}
