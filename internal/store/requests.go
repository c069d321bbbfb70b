package store

import (
	"context"

	"sharebite/internal/models"
	"sharebite/internal/observability"
)

// CreateRequestInput carries the caller-supplied fields for a new request
// against a post.
type CreateRequestInput struct {
	PostID   string  `json:"post_id"`
	UserID   string  `json:"user_id"`
	Quantity float64 `json:"quantity"`
	Message  string  `json:"message"`
}

// CreateRequest appends a pending request to the owning post's sequence and
// persists the post collection plus the flattened snapshot. A request against
// a post that does not exist is rejected outright; the store never writes
// orphan requests that no post contains.
func (s *Store) CreateRequest(ctx context.Context, in CreateRequestInput) (*models.Request, error) {
	if in.UserID == "" {
		return nil, models.NewValidationError("User ID is required")
	}

	ctx, span := observability.TraceStoreOperation(ctx, "request", "create")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.postIndex(in.PostID)
	if idx < 0 {
		return nil, models.NewNotFoundError("Food post", in.PostID)
	}

	req := models.Request{
		ID:        s.newID(),
		UserID:    in.UserID,
		Quantity:  in.Quantity,
		Message:   in.Message,
		Status:    models.RequestStatusPending,
		CreatedAt: s.now(),
	}

	s.posts[idx].Requests = append(s.posts[idx].Requests, req)
	if err := s.savePosts(ctx); err != nil {
		return nil, err
	}
	if err := s.saveRequestsSnapshot(ctx); err != nil {
		return nil, err
	}

	observability.StoreMutations.WithLabelValues("request", "create").Inc()
	return &req, nil
}

// UpdateRequestStatus scans every post's request sequence for the id, sets
// the new status and stamps the update time. First match wins.
func (s *Store) UpdateRequestStatus(ctx context.Context, id string, status models.RequestStatus) (*models.Request, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("Invalid request status")
	}

	ctx, span := observability.TraceStoreOperation(ctx, "request", "update_status")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for pi := range s.posts {
		for ri := range s.posts[pi].Requests {
			if s.posts[pi].Requests[ri].ID != id {
				continue
			}

			s.posts[pi].Requests[ri].Status = status
			s.posts[pi].Requests[ri].UpdatedAt = s.now()

			if err := s.savePosts(ctx); err != nil {
				return nil, err
			}
			if err := s.saveRequestsSnapshot(ctx); err != nil {
				return nil, err
			}

			observability.StoreMutations.WithLabelValues("request", "update_status").Inc()
			updated := s.posts[pi].Requests[ri]
			return &updated, nil
		}
	}

	return nil, models.NewNotFoundError("Request", id)
}

// RequestsByPost returns the request sequence of the given post, empty when
// the post does not exist.
func (s *Store) RequestsByPost(postID string) []models.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.postIndex(postID)
	if idx < 0 {
		return []models.Request{}
	}
	requests := make([]models.Request, len(s.posts[idx].Requests))
	copy(requests, s.posts[idx].Requests)
	return requests
}

// RequestsByUser flattens requests across all posts and keeps those made by
// the given user, each annotated with the parent post's id and name.
func (s *Store) RequestsByUser(userID string) []models.FlatRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.FlatRequest
	for pi := range s.posts {
		for _, req := range s.posts[pi].Requests {
			if req.UserID == userID {
				out = append(out, models.FlatRequest{
					Request:  req,
					PostID:   s.posts[pi].ID,
					PostName: s.posts[pi].FoodName,
				})
			}
		}
	}
	return out
}

// AllRequests flattens every post's request sequence in collection order.
func (s *Store) AllRequests() []models.FlatRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flattenRequests()
}

// flattenRequests materializes the request snapshot. Callers must hold the
// lock.
func (s *Store) flattenRequests() []models.FlatRequest {
	out := []models.FlatRequest{}
	for pi := range s.posts {
		for _, req := range s.posts[pi].Requests {
			out = append(out, models.FlatRequest{
				Request:  req,
				PostID:   s.posts[pi].ID,
				PostName: s.posts[pi].FoodName,
			})
		}
	}
	return out
}
