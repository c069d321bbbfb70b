// Package store implements the in-memory entity store for the ShareBite data
// layer. It owns the user, food post and order collections, mutates them in
// memory, and writes each affected collection back to blob storage whole on
// every change.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"sharebite/internal/models"
	"sharebite/internal/observability"
	"sharebite/internal/storage"

	"github.com/google/uuid"
)

// Store holds all entity collections. It is constructed once by the
// composition root and shared; the mutex exists because the HTTP surface
// serves requests concurrently, not because the data layer batches work.
type Store struct {
	mu    sync.RWMutex
	blobs storage.Blobs
	log   *slog.Logger

	users  []models.User
	posts  []models.FoodPost
	orders []models.Order

	now   func() time.Time
	newID func() string
}

// Open loads all collections from blob storage and returns a ready store.
// A blob that exists but does not parse is a fatal condition: the caller
// decides whether to reset or abort, the store never silently drops data.
func Open(ctx context.Context, blobs storage.Blobs) (*Store, error) {
	s := &Store{
		blobs: blobs,
		log:   observability.Logger(),
		now:   time.Now,
		newID: uuid.NewString,
	}

	if err := loadCollection(ctx, blobs, storage.KeyUsers, &s.users); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, blobs, storage.KeyFoodPosts, &s.posts); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, blobs, storage.KeyOrders, &s.orders); err != nil {
		return nil, err
	}

	// Posts persisted before the requests field existed deserialize with a
	// nil slice; normalize so the sequence is always present.
	for i := range s.posts {
		if s.posts[i].Requests == nil {
			s.posts[i].Requests = []models.Request{}
		}
	}

	s.log.Info("entity store loaded",
		slog.Int("users", len(s.users)),
		slog.Int("food_posts", len(s.posts)),
		slog.Int("orders", len(s.orders)),
	)

	observability.CollectionSize.WithLabelValues("users").Set(float64(len(s.users)))
	observability.CollectionSize.WithLabelValues("food_posts").Set(float64(len(s.posts)))
	observability.CollectionSize.WithLabelValues("orders").Set(float64(len(s.orders)))

	return s, nil
}

func loadCollection[T any](ctx context.Context, blobs storage.Blobs, key string, dest *[]T) error {
	raw, ok, err := blobs.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok {
		*dest = []T{}
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("corrupt blob %s: %w", key, err)
	}
	if *dest == nil {
		*dest = []T{}
	}
	return nil
}

// Empty reports whether the store holds no users at all; the composition
// root uses this to decide whether to seed demo data.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users) == 0
}

func (s *Store) saveUsers(ctx context.Context) error {
	return saveCollection(ctx, s, storage.KeyUsers, "users", s.users)
}

func (s *Store) savePosts(ctx context.Context) error {
	return saveCollection(ctx, s, storage.KeyFoodPosts, "food_posts", s.posts)
}

func (s *Store) saveOrders(ctx context.Context) error {
	return saveCollection(ctx, s, storage.KeyOrders, "orders", s.orders)
}

// saveRequestsSnapshot rewrites the flattened request export. The snapshot is
// a write-only cache; the posts blob stays the source of truth.
func (s *Store) saveRequestsSnapshot(ctx context.Context) error {
	return saveCollection(ctx, s, storage.KeyRequests, "requests", s.flattenRequests())
}

func saveCollection[T any](ctx context.Context, s *Store, key, name string, collection []T) error {
	ctx, span := observability.TraceStorageOperation(ctx, "set", key)
	defer span.End()

	data, err := json.Marshal(collection)
	if err != nil {
		return models.NewInternalError(fmt.Errorf("marshaling %s: %w", key, err))
	}
	if err := s.blobs.Set(ctx, key, string(data)); err != nil {
		span.RecordError(err)
		s.log.Error("collection save failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return models.NewInternalError(fmt.Errorf("saving %s: %w", key, err))
	}

	observability.CollectionSaves.WithLabelValues(key).Inc()
	observability.CollectionSize.WithLabelValues(name).Set(float64(len(collection)))
	return nil
}
