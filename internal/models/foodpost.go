package models

import "time"

// PostStatus defines lifecycle states for food posts.
type PostStatus string

const (
	// PostStatusAvailable means the food can still be requested.
	PostStatusAvailable PostStatus = "available"
	// PostStatusReserved means the owner accepted a request and is holding the food.
	PostStatusReserved PostStatus = "reserved"
	// PostStatusCompleted means the food was handed over.
	PostStatusCompleted PostStatus = "completed"
	// PostStatusExpired means the food passed its safe-until time.
	PostStatusExpired PostStatus = "expired"
)

// Valid reports whether the status is one of the known values.
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusAvailable, PostStatusReserved, PostStatusCompleted, PostStatusExpired:
		return true
	}
	return false
}

// FoodPost advertises surplus food offered by a provider. Requests against the
// post are owned by the post and live in its Requests slice; they have no
// independent persistence.
type FoodPost struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	FoodName     string     `json:"food_name"`
	FoodType     string     `json:"food_type"`
	Category     string     `json:"category"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	PricePerUnit float64    `json:"price_per_unit"`
	TotalAmount  float64    `json:"total_amount"`
	SafeUntil    time.Time  `json:"safe_until"`
	Description  string     `json:"description"`
	Status       PostStatus `json:"status"`
	Requests     []Request  `json:"requests"`
	Views        int        `json:"views"`
	CreatedAt    time.Time  `json:"created_at"`
}

// FoodPostPatch is a partial update for a FoodPost. Nil fields are left
// untouched. ID, UserID, Requests, Views and CreatedAt cannot be patched.
type FoodPostPatch struct {
	FoodName     *string     `json:"food_name"`
	FoodType     *string     `json:"food_type"`
	Category     *string     `json:"category"`
	Quantity     *float64    `json:"quantity"`
	Unit         *string     `json:"unit"`
	PricePerUnit *float64    `json:"price_per_unit"`
	TotalAmount  *float64    `json:"total_amount"`
	SafeUntil    *time.Time  `json:"safe_until"`
	Description  *string     `json:"description"`
	Status       *PostStatus `json:"status"`
}

// Apply merges the patch into the post, field by field.
func (p FoodPostPatch) Apply(post *FoodPost) {
	if p.FoodName != nil {
		post.FoodName = *p.FoodName
	}
	if p.FoodType != nil {
		post.FoodType = *p.FoodType
	}
	if p.Category != nil {
		post.Category = *p.Category
	}
	if p.Quantity != nil {
		post.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		post.Unit = *p.Unit
	}
	if p.PricePerUnit != nil {
		post.PricePerUnit = *p.PricePerUnit
	}
	if p.TotalAmount != nil {
		post.TotalAmount = *p.TotalAmount
	}
	if p.SafeUntil != nil {
		post.SafeUntil = *p.SafeUntil
	}
	if p.Description != nil {
		post.Description = *p.Description
	}
	if p.Status != nil {
		post.Status = *p.Status
	}
}

// Validate checks patch fields that have a closed value set.
func (p FoodPostPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return NewValidationError("Invalid post status")
	}
	return nil
}
