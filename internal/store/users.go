package store

import (
	"context"

	"sharebite/internal/models"
	"sharebite/internal/observability"
)

// CreateUserInput carries the caller-supplied fields for a new user.
// Identity, verification, rating and counters are store-assigned.
type CreateUserInput struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	OrgName   string      `json:"org_name"`
	OrgType   string      `json:"org_type"`
	Address   string      `json:"address"`
	Role      models.Role `json:"role"`
}

// CreateUser appends a new user with generated id, creation timestamp and
// zeroed counters, persists the collection and returns the created record.
func (s *Store) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if in.Email == "" {
		return nil, models.NewValidationError("Email is required")
	}
	if !in.Role.Valid() {
		return nil, models.NewValidationError("Role must be provider or receiver")
	}

	ctx, span := observability.TraceStoreOperation(ctx, "user", "create")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:         s.newID(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		OrgName:    in.OrgName,
		OrgType:    in.OrgType,
		Address:    in.Address,
		Role:       in.Role,
		IsVerified: false,
		Rating:     0,
		TotalPosts: 0,
		TotalMeals: 0,
		CreatedAt:  s.now(),
	}

	s.users = append(s.users, user)
	if err := s.saveUsers(ctx); err != nil {
		return nil, err
	}

	observability.StoreMutations.WithLabelValues("user", "create").Inc()
	return &user, nil
}

// UpdateUser shallow-merges the patch over the stored user. Fields absent
// from the patch keep their values; id and creation timestamp cannot change.
func (s *Store) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	ctx, span := observability.TraceStoreOperation(ctx, "user", "update")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.userIndex(id)
	if idx < 0 {
		return nil, models.NewNotFoundError("User", id)
	}

	patch.Apply(&s.users[idx])
	if err := s.saveUsers(ctx); err != nil {
		return nil, err
	}

	observability.StoreMutations.WithLabelValues("user", "update").Inc()
	updated := s.users[idx]
	return &updated, nil
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.userIndex(id)
	if idx < 0 {
		return nil, models.NewNotFoundError("User", id)
	}
	user := s.users[idx]
	return &user, nil
}

// AllUsers returns a copy of the user collection in insertion order.
func (s *Store) AllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users
}

// userIndex returns the position of the user with the given id, or -1.
// Callers must hold the lock.
func (s *Store) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}
