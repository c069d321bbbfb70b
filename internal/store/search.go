package store

import (
	"strings"

	"sharebite/internal/models"
)

// Filters narrows a food post search. FoodType and Category are exact
// matches; MaxPrice is an inclusive upper bound on price per unit. Zero
// values mean the filter is not applied; filters compose as logical AND.
type Filters struct {
	FoodType string   `json:"food_type"`
	Category string   `json:"category"`
	MaxPrice *float64 `json:"max_price"`
}

// SearchFoodPosts returns available posts matching the query and filters.
// The query is a case-insensitive substring match against name and
// description; results keep the collection's insertion order, there is no
// ranking.
func (s *Store) SearchFoodPosts(query string, filters Filters) []models.FoodPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)

	var results []models.FoodPost
	for i := range s.posts {
		post := &s.posts[i]
		if post.Status != models.PostStatusAvailable {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(post.FoodName), q) &&
			!strings.Contains(strings.ToLower(post.Description), q) {
			continue
		}
		if filters.FoodType != "" && post.FoodType != filters.FoodType {
			continue
		}
		if filters.Category != "" && post.Category != filters.Category {
			continue
		}
		if filters.MaxPrice != nil && post.PricePerUnit > *filters.MaxPrice {
			continue
		}
		results = append(results, clonePost(*post))
	}
	return results
}
