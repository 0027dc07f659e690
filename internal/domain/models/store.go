// internal/domain/models/store.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Point is a GeoJSON point the way MongoDB's geospatial index expects it:
// Type is always "Point" and Coordinates is [longitude, latitude] —
// longitude first. Exactly two elements.
type Point struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
}

// NewPoint builds a Point from a longitude-first coordinate pair.
func NewPoint(lng, lat float64) Point {
	return Point{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Lng returns the longitude (first coordinate). Zero if malformed.
func (p Point) Lng() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}
	return p.Coordinates[0]
}

// Lat returns the latitude (second coordinate). Zero if malformed.
func (p Point) Lat() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}
	return p.Coordinates[1]
}

// Store is a single business listing.
//
// Slug is unique across all stores; it is derived from Name on create and
// regenerated when the name changes. AuthorID is set once on create and
// never changes; edits require the requester to match it.
type Store struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Location    Point              `bson:"location" json:"location"`
	Photo       string             `bson:"photo,omitempty" json:"photo,omitempty"`
	AuthorID    primitive.ObjectID `bson:"author_id" json:"author_id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`

	// Score is populated only by text-search projections ($meta: textScore).
	Score float64 `bson:"score,omitempty" json:"score,omitempty"`

	// Author and Reviews are resolved at read time by the store query
	// service; they are never written to the stores collection.
	Author  AuthorSummary      `bson:"-" json:"author,omitempty"`
	Reviews []ReviewWithAuthor `bson:"-" json:"reviews,omitempty"`
}

// StoreProjection is the reduced field set returned by the proximity API.
type StoreProjection struct {
	Slug        string `bson:"slug" json:"slug"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Location    Point  `bson:"location" json:"location"`
	Photo       string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// TagCount is one row of the tag aggregation: a tag and how many stores
// carry it, sorted by count descending.
type TagCount struct {
	Tag   string `bson:"_id" json:"tag"`
	Count int64  `bson:"count" json:"count"`
}

// RatedStore is one row of the top-rated aggregation.
type RatedStore struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Slug          string             `bson:"slug" json:"slug"`
	Photo         string             `bson:"photo,omitempty" json:"photo,omitempty"`
	ReviewCount   int64              `bson:"review_count" json:"review_count"`
	AverageRating float64            `bson:"average_rating" json:"average_rating"`
}
