package store

import (
	"context"

	"sharebite/internal/models"
	"sharebite/internal/observability"
)

// Export returns a full snapshot of the top-level collections. Requests are
// not part of the snapshot; they travel inside the posts that own them.
func (s *Store) Export() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)

	return models.Snapshot{
		Users:      users,
		FoodPosts:  clonePosts(s.posts),
		Orders:     orders,
		ExportedAt: s.now(),
	}
}

// Import wholesale-replaces the collections with the snapshot's and persists
// all of them, the flattened request snapshot included since it derives from
// the replaced posts. The snapshot is copied on the way in, mirroring Export,
// so a caller that keeps mutating it cannot reach store state. Nil collections
// become empty ones; referential integrity of the supplied data is the
// caller's concern.
func (s *Store) Import(ctx context.Context, snap models.Snapshot) error {
	ctx, span := observability.TraceStoreOperation(ctx, "snapshot", "import")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make([]models.User, len(snap.Users))
	copy(s.users, snap.Users)
	// clonePost also normalizes nil request sequences to empty ones.
	s.posts = clonePosts(snap.FoodPosts)
	s.orders = make([]models.Order, len(snap.Orders))
	copy(s.orders, snap.Orders)

	if err := s.saveUsers(ctx); err != nil {
		return err
	}
	if err := s.savePosts(ctx); err != nil {
		return err
	}
	if err := s.saveOrders(ctx); err != nil {
		return err
	}
	if err := s.saveRequestsSnapshot(ctx); err != nil {
		return err
	}

	observability.StoreMutations.WithLabelValues("snapshot", "import").Inc()
	return nil
}
