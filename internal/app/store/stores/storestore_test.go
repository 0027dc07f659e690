package storestore_test

import (
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	storestore "github.com/dalemusser/storemap/internal/app/store/stores"
	"github.com/dalemusser/storemap/internal/app/system/indexes"
	"github.com/dalemusser/storemap/internal/domain/models"
	"github.com/dalemusser/storemap/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "Ada", "ada@example.com")

	created, err := store.Create(ctx, models.Store{
		Name:        "  Coffee   Corner  ",
		Description: "Good coffee",
		Tags:        []string{"Wifi", "Wifi", ""},
		Location:    models.NewPoint(-122.4, 37.7),
		AuthorID:    author.ID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "Coffee Corner" {
		t.Errorf("Name: got %q, want %q", created.Name, "Coffee Corner")
	}
	if created.Slug != "coffee-corner" {
		t.Errorf("Slug: got %q, want %q", created.Slug, "coffee-corner")
	}
	if len(created.Tags) != 1 || created.Tags[0] != "Wifi" {
		t.Errorf("Tags: got %v, want [Wifi]", created.Tags)
	}
	if created.Location.Type != "Point" {
		t.Errorf("Location.Type: got %q, want %q", created.Location.Type, "Point")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := primitive.NewObjectID()

	tests := []struct {
		name    string
		store   models.Store
		wantErr error
	}{
		{
			name:    "missing name",
			store:   models.Store{Location: models.NewPoint(0, 0), AuthorID: author},
			wantErr: storestore.ErrMissingName,
		},
		{
			name:    "missing author",
			store:   models.Store{Name: "A Store", Location: models.NewPoint(0, 0)},
			wantErr: storestore.ErrMissingAuthor,
		},
		{
			name:    "bad location",
			store:   models.Store{Name: "A Store", AuthorID: author},
			wantErr: storestore.ErrBadLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Create(ctx, tt.store)
			if err != tt.wantErr {
				t.Errorf("Create: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStore_Create_SlugCollision(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "Ada", "ada@example.com")

	first, err := store.Create(ctx, models.Store{
		Name:     "Taco Spot",
		Location: models.NewPoint(-122.4, 37.7),
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if first.Slug != "taco-spot" {
		t.Fatalf("first Slug: got %q, want %q", first.Slug, "taco-spot")
	}

	second, err := store.Create(ctx, models.Store{
		Name:     "Taco Spot",
		Location: models.NewPoint(-122.5, 37.8),
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if second.Slug != "taco-spot-2" {
		t.Errorf("second Slug: got %q, want %q", second.Slug, "taco-spot-2")
	}

	third, err := store.Create(ctx, models.Store{
		Name:     "Taco Spot",
		Location: models.NewPoint(-122.6, 37.9),
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("third Create failed: %v", err)
	}
	if third.Slug != "taco-spot-3" {
		t.Errorf("third Slug: got %q, want %q", third.Slug, "taco-spot-3")
	}
}

func TestStore_ApplyUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "Ada", "ada@example.com")
	created, err := store.Create(ctx, models.Store{
		Name:     "Old Name",
		Location: models.NewPoint(-122.4, 37.7),
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("rename regenerates slug", func(t *testing.T) {
		updated, err := store.ApplyUpdate(ctx, created.ID, storestore.Update{
			Name:        "New Name",
			Description: "updated",
			Location:    models.NewPoint(-122.4, 37.7),
		})
		if err != nil {
			t.Fatalf("ApplyUpdate failed: %v", err)
		}
		if updated.Slug != "new-name" {
			t.Errorf("Slug: got %q, want %q", updated.Slug, "new-name")
		}
		if updated.Description != "updated" {
			t.Errorf("Description: got %q", updated.Description)
		}
		if updated.AuthorID != author.ID {
			t.Error("AuthorID changed on update")
		}
	})

	t.Run("rename does not collide with itself", func(t *testing.T) {
		updated, err := store.ApplyUpdate(ctx, created.ID, storestore.Update{
			Name:     "New Name",
			Location: models.NewPoint(-122.4, 37.7),
		})
		if err != nil {
			t.Fatalf("ApplyUpdate failed: %v", err)
		}
		if updated.Slug != "new-name" {
			t.Errorf("Slug: got %q, want %q", updated.Slug, "new-name")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.ApplyUpdate(ctx, primitive.NewObjectID(), storestore.Update{
			Name:     "Whatever",
			Location: models.NewPoint(0, 0),
		})
		if err != mongo.ErrNoDocuments {
			t.Errorf("got %v, want mongo.ErrNoDocuments", err)
		}
	})
}

func TestStore_List_Pagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "Ada", "ada@example.com")
	slugs := []string{"one", "two", "three", "four", "five", "six"}
	for _, s := range slugs {
		fixtures.CreateStore(ctx, "Store "+s, s, author.ID)
	}

	page1, total, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 6 {
		t.Errorf("total: got %d, want 6", total)
	}
	if len(page1) != 4 {
		t.Errorf("page 1 size: got %d, want 4", len(page1))
	}

	page2, _, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List page 2 failed: %v", err)
	}
	if len(page2) != 2 {
		t.Errorf("page 2 size: got %d, want 2", len(page2))
	}
}

func TestStore_GetBySlug_Populates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "Ada", "ada@example.com")
	reviewer := fixtures.CreateUser(ctx, "Debbie", "debbie@example.com")
	st := fixtures.CreateStore(ctx, "Coffee Corner", "coffee-corner", author.ID)
	fixtures.CreateReview(ctx, st.ID, reviewer.ID, 5, "Great coffee")
	fixtures.CreateReview(ctx, st.ID, author.ID, 3, "I may be biased")

	got, err := store.GetBySlug(ctx, "coffee-corner")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}

	if got.Author.Name != "Ada" {
		t.Errorf("Author.Name: got %q, want %q", got.Author.Name, "Ada")
	}
	if got.Author.Gravatar == "" {
		t.Error("expected author gravatar to be resolved")
	}
	if len(got.Reviews) != 2 {
		t.Fatalf("Reviews: got %d, want 2", len(got.Reviews))
	}
	for _, r := range got.Reviews {
		if r.Author.Name == "" {
			t.Error("expected review author to be resolved")
		}
	}

	t.Run("unknown slug", func(t *testing.T) {
		_, err := store.GetBySlug(ctx, "no-such-store")
		if err != mongo.ErrNoDocuments {
			t.Errorf("got %v, want mongo.ErrNoDocuments", err)
		}
	})
}

func TestStore_TagCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "Ada", "ada@example.com")

	insert := func(slug string, tags []string) {
		st := models.Store{
			ID:        primitive.NewObjectID(),
			Name:      slug,
			Slug:      slug,
			Tags:      tags,
			Location:  models.NewPoint(0, 0),
			AuthorID:  author.ID,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := db.Collection("stores").InsertOne(ctx, st); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	insert("a", []string{"Wifi", "Open Late"})
	insert("b", []string{"Wifi"})
	insert("c", []string{"Family Friendly"})

	counts, err := store.TagCounts(ctx)
	if err != nil {
		t.Fatalf("TagCounts failed: %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("got %d tags, want 3", len(counts))
	}
	if counts[0].Tag != "Wifi" || counts[0].Count != 2 {
		t.Errorf("top tag: got %s=%d, want Wifi=2", counts[0].Tag, counts[0].Count)
	}
}

func TestStore_ByTag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "Ada", "ada@example.com")
	fixtures.CreateStore(ctx, "Tagged", "tagged", author.ID)
	fixtures.CreateStoreAt(ctx, "Untagged", "untagged", author.ID, 0, 0)

	t.Run("specific tag", func(t *testing.T) {
		got, err := store.ByTag(ctx, "Family Friendly")
		if err != nil {
			t.Fatalf("ByTag failed: %v", err)
		}
		if len(got) != 1 || got[0].Slug != "tagged" {
			t.Errorf("got %d stores, want the tagged one", len(got))
		}
	})

	t.Run("empty tag matches any tagged store", func(t *testing.T) {
		got, err := store.ByTag(ctx, "")
		if err != nil {
			t.Fatalf("ByTag failed: %v", err)
		}
		if len(got) != 1 || got[0].Slug != "tagged" {
			t.Errorf("got %d stores, want only the tagged one", len(got))
		}
	})
}

func TestStore_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	author := fixtures.CreateUser(ctx, "Ada", "ada@example.com")
	for i, name := range []string{
		"Coffee Corner", "Coffee House", "Coffee Coffee Coffee",
		"Coffee Stop", "Coffee Cart", "Coffee Lab", "Taco Spot",
	} {
		fixtures.CreateStore(ctx, name, fmt.Sprintf("store-%d", i), author.ID)
	}

	t.Run("empty query returns nothing", func(t *testing.T) {
		got, err := store.Search(ctx, "")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d results, want 0", len(got))
		}
	})

	t.Run("ranked and limited", func(t *testing.T) {
		got, err := store.Search(ctx, "coffee")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(got) != storestore.SearchMaxResults {
			t.Fatalf("got %d results, want %d", len(got), storestore.SearchMaxResults)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Score > got[i-1].Score {
				t.Errorf("results not sorted by score: %v > %v at %d", got[i].Score, got[i-1].Score, i)
			}
		}
	})
}

func TestStore_Near(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	author := fixtures.CreateUser(ctx, "Ada", "ada@example.com")
	// Roughly 0.01 degrees latitude ≈ 1.1 km.
	fixtures.CreateStoreAt(ctx, "Near", "near", author.ID, -122.40, 37.78)
	fixtures.CreateStoreAt(ctx, "Nearer", "nearer", author.ID, -122.40, 37.775)
	// Over 100 km away.
	fixtures.CreateStoreAt(ctx, "Far", "far", author.ID, -121.0, 38.5)

	got, err := store.Near(ctx, -122.40, 37.77)
	if err != nil {
		t.Fatalf("Near failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d stores, want 2 within 10km", len(got))
	}
	if got[0].Name != "Nearer" {
		t.Errorf("first result: got %q, want the closest store", got[0].Name)
	}
}

func TestStore_TopRated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "Ada", "ada@example.com")
	good := fixtures.CreateStore(ctx, "Good Store", "good-store", author.ID)
	ok := fixtures.CreateStore(ctx, "OK Store", "ok-store", author.ID)
	single := fixtures.CreateStore(ctx, "One Review", "one-review", author.ID)

	fixtures.CreateReview(ctx, good.ID, author.ID, 5, "great")
	fixtures.CreateReview(ctx, good.ID, author.ID, 5, "still great")
	fixtures.CreateReview(ctx, ok.ID, author.ID, 3, "fine")
	fixtures.CreateReview(ctx, ok.ID, author.ID, 2, "meh")
	fixtures.CreateReview(ctx, single.ID, author.ID, 5, "lonely five stars")

	rated, err := store.TopRated(ctx)
	if err != nil {
		t.Fatalf("TopRated failed: %v", err)
	}
	if len(rated) != 2 {
		t.Fatalf("got %d stores, want 2 (single-review store excluded)", len(rated))
	}
	if rated[0].Slug != "good-store" {
		t.Errorf("top store: got %q, want %q", rated[0].Slug, "good-store")
	}
	if rated[0].AverageRating != 5 {
		t.Errorf("average: got %v, want 5", rated[0].AverageRating)
	}
	if rated[0].ReviewCount != 2 {
		t.Errorf("review count: got %d, want 2", rated[0].ReviewCount)
	}
}

func TestStore_ByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := storestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	author := fixtures.CreateUser(ctx, "Ada", "ada@example.com")
	a := fixtures.CreateStore(ctx, "A", "a", author.ID)
	fixtures.CreateStore(ctx, "B", "b", author.ID)

	got, err := store.ByIDs(ctx, []primitive.ObjectID{a.ID})
	if err != nil {
		t.Fatalf("ByIDs failed: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "a" {
		t.Errorf("got %d stores, want just %q", len(got), "a")
	}

	empty, err := store.ByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("ByIDs with no ids failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("got %d stores, want 0", len(empty))
	}
}
