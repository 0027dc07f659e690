// internal/domain/models/review.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user's review of a store.
type Review struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	AuthorID  primitive.ObjectID `bson:"author_id" json:"author_id"`
	StoreID   primitive.ObjectID `bson:"store_id" json:"store_id"`
	Text      string             `bson:"text" json:"text"`
	Rating    int                `bson:"rating" json:"rating"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// AuthorSummary is the user data embedded into a review (or store) at read
// time. Email is carried only so Gravatar can be derived; it is never
// serialized to callers.
type AuthorSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"-"`
	Gravatar string             `bson:"-" json:"gravatar"`
}

// ReviewWithAuthor is a review with its author resolved inline. Every
// review fetch returns this shape — the join-on-read is not optional.
type ReviewWithAuthor struct {
	Review `bson:",inline"`
	Author AuthorSummary `bson:"author" json:"author"`
}
