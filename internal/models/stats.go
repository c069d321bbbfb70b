package models

import "time"

// Stats summarizes platform-wide counts. TotalMealsSaved is the raw sum of
// post quantities; units are not normalized across posts.
type Stats struct {
	TotalUsers      int     `json:"total_users"`
	TotalPosts      int     `json:"total_posts"`
	TotalOrders     int     `json:"total_orders"`
	TotalMealsSaved float64 `json:"total_meals_saved"`
	VerifiedUsers   int     `json:"verified_users"`
	ActivePosts     int     `json:"active_posts"`
}

// Snapshot is a full export of the top-level collections. Requests are not
// included; they are derivable from the posts that contain them.
type Snapshot struct {
	Users      []User     `json:"users"`
	FoodPosts  []FoodPost `json:"food_posts"`
	Orders     []Order    `json:"orders"`
	ExportedAt time.Time  `json:"exported_at"`
}
