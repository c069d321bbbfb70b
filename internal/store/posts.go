package store

import (
	"context"
	"log/slog"
	"time"

	"sharebite/internal/models"
	"sharebite/internal/observability"
)

// CreateFoodPostInput carries the caller-supplied fields for a new food post.
// Status, views and the request sequence are store-assigned.
type CreateFoodPostInput struct {
	UserID       string    `json:"user_id"`
	FoodName     string    `json:"food_name"`
	FoodType     string    `json:"food_type"`
	Category     string    `json:"category"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	PricePerUnit float64   `json:"price_per_unit"`
	TotalAmount  float64   `json:"total_amount"`
	SafeUntil    time.Time `json:"safe_until"`
	Description  string    `json:"description"`
}

// CreateFoodPost appends a new available post and persists the collection.
// The owning user's post counter is incremented and persisted as well; when
// no such user exists the counter update is skipped and the post is still
// created, matching the data layer's lenient ownership rules.
func (s *Store) CreateFoodPost(ctx context.Context, in CreateFoodPostInput) (*models.FoodPost, error) {
	if in.FoodName == "" {
		return nil, models.NewValidationError("Food name is required")
	}
	if in.Quantity < 0 {
		return nil, models.NewValidationError("Quantity cannot be negative")
	}

	ctx, span := observability.TraceStoreOperation(ctx, "food_post", "create")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.FoodPost{
		ID:           s.newID(),
		UserID:       in.UserID,
		FoodName:     in.FoodName,
		FoodType:     in.FoodType,
		Category:     in.Category,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		PricePerUnit: in.PricePerUnit,
		TotalAmount:  in.TotalAmount,
		SafeUntil:    in.SafeUntil,
		Description:  in.Description,
		Status:       models.PostStatusAvailable,
		Requests:     []models.Request{},
		Views:        0,
		CreatedAt:    s.now(),
	}

	s.posts = append(s.posts, post)
	if err := s.savePosts(ctx); err != nil {
		return nil, err
	}

	if idx := s.userIndex(in.UserID); idx >= 0 {
		s.users[idx].TotalPosts++
		if err := s.saveUsers(ctx); err != nil {
			return nil, err
		}
	} else {
		s.log.Warn("food post created for unknown user",
			slog.String("post_id", post.ID),
			slog.String("user_id", in.UserID),
		)
	}

	observability.StoreMutations.WithLabelValues("food_post", "create").Inc()
	created := clonePost(post)
	return &created, nil
}

// UpdateFoodPost shallow-merges the patch over the stored post. Fields absent
// from the patch keep their values; identity, ownership and the embedded
// request sequence cannot change through an update.
func (s *Store) UpdateFoodPost(ctx context.Context, id string, patch models.FoodPostPatch) (*models.FoodPost, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	ctx, span := observability.TraceStoreOperation(ctx, "food_post", "update")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.postIndex(id)
	if idx < 0 {
		return nil, models.NewNotFoundError("Food post", id)
	}

	patch.Apply(&s.posts[idx])
	if err := s.savePosts(ctx); err != nil {
		return nil, err
	}

	observability.StoreMutations.WithLabelValues("food_post", "update").Inc()
	updated := clonePost(s.posts[idx])
	return &updated, nil
}

// DeleteFoodPost removes the post and decrements the owner's post counter.
// The embedded requests vanish with the post; orders are untouched. Returns
// false when no post with the id exists.
func (s *Store) DeleteFoodPost(ctx context.Context, id string) (bool, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "food_post", "delete")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.postIndex(id)
	if idx < 0 {
		return false, nil
	}

	ownerID := s.posts[idx].UserID
	s.posts = append(s.posts[:idx], s.posts[idx+1:]...)
	if err := s.savePosts(ctx); err != nil {
		return false, err
	}

	if uidx := s.userIndex(ownerID); uidx >= 0 {
		s.users[uidx].TotalPosts--
		if err := s.saveUsers(ctx); err != nil {
			return false, err
		}
	}

	if err := s.saveRequestsSnapshot(ctx); err != nil {
		return false, err
	}

	observability.StoreMutations.WithLabelValues("food_post", "delete").Inc()
	return true, nil
}

// GetFoodPost returns the post with the given id.
func (s *Store) GetFoodPost(id string) (*models.FoodPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.postIndex(id)
	if idx < 0 {
		return nil, models.NewNotFoundError("Food post", id)
	}
	post := clonePost(s.posts[idx])
	return &post, nil
}

// AllFoodPosts returns a copy of the post collection in insertion order.
func (s *Store) AllFoodPosts() []models.FoodPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts)
}

// FoodPostsByUser returns all posts owned by the given user.
func (s *Store) FoodPostsByUser(userID string) []models.FoodPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var posts []models.FoodPost
	for i := range s.posts {
		if s.posts[i].UserID == userID {
			posts = append(posts, clonePost(s.posts[i]))
		}
	}
	return posts
}

// IncrementViews bumps the view counter of the post and persists the
// collection. Returns the new counter value.
func (s *Store) IncrementViews(ctx context.Context, id string) (int, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "food_post", "increment_views")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.postIndex(id)
	if idx < 0 {
		return 0, models.NewNotFoundError("Food post", id)
	}

	s.posts[idx].Views++
	if err := s.savePosts(ctx); err != nil {
		return 0, err
	}
	return s.posts[idx].Views, nil
}

// postIndex returns the position of the post with the given id, or -1.
// Callers must hold the lock.
func (s *Store) postIndex(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

// clonePost copies a post together with its embedded request sequence so
// callers never share backing arrays with the store.
func clonePost(p models.FoodPost) models.FoodPost {
	out := p
	out.Requests = make([]models.Request, len(p.Requests))
	copy(out.Requests, p.Requests)
	return out
}

func clonePosts(posts []models.FoodPost) []models.FoodPost {
	out := make([]models.FoodPost, len(posts))
	for i := range posts {
		out[i] = clonePost(posts[i])
	}
	return out
}
