package store

import "sharebite/internal/models"

// Stats returns platform-wide counts over the current state. Meals saved is
// the raw sum of post quantities; units are deliberately not normalized, the
// figure is a headline proxy rather than a measurement.
func (s *Store) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.Stats{
		TotalUsers:  len(s.users),
		TotalPosts:  len(s.posts),
		TotalOrders: len(s.orders),
	}

	for i := range s.posts {
		stats.TotalMealsSaved += s.posts[i].Quantity
		if s.posts[i].Status == models.PostStatusAvailable {
			stats.ActivePosts++
		}
	}
	for i := range s.users {
		if s.users[i].IsVerified {
			stats.VerifiedUsers++
		}
	}

	return stats
}
