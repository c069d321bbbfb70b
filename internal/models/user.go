// Package models contains data structures for the application's domain entities.
package models

import "time"

// Role distinguishes organizations that give food from those that collect it.
type Role string

const (
	// RoleProvider posts surplus food.
	RoleProvider Role = "provider"
	// RoleReceiver requests and collects posted food.
	RoleReceiver Role = "receiver"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleProvider, RoleReceiver:
		return true
	}
	return false
}

// User represents a registered organization or individual on the platform.
type User struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	OrgName    string  `json:"org_name"`
	OrgType    string  `json:"org_type"`
	Address    string  `json:"address"`
	Role       Role    `json:"role"`
	IsVerified bool    `json:"is_verified"`
	Rating     float64 `json:"rating"`
	// TotalPosts tracks non-deleted food posts owned by this user. Maintained
	// incrementally by the store, never recomputed.
	TotalPosts int       `json:"total_posts"`
	TotalMeals int       `json:"total_meals"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserPatch is a partial update for a User. Nil fields are left untouched.
// ID, CreatedAt and TotalPosts cannot be patched; the counter belongs to the
// store's post bookkeeping.
type UserPatch struct {
	FirstName  *string  `json:"first_name"`
	LastName   *string  `json:"last_name"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	OrgName    *string  `json:"org_name"`
	OrgType    *string  `json:"org_type"`
	Address    *string  `json:"address"`
	Role       *Role    `json:"role"`
	IsVerified *bool    `json:"is_verified"`
	Rating     *float64 `json:"rating"`
	TotalMeals *int     `json:"total_meals"`
}

// Apply merges the patch into the user, field by field.
func (p UserPatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.OrgName != nil {
		u.OrgName = *p.OrgName
	}
	if p.OrgType != nil {
		u.OrgType = *p.OrgType
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.IsVerified != nil {
		u.IsVerified = *p.IsVerified
	}
	if p.Rating != nil {
		u.Rating = *p.Rating
	}
	if p.TotalMeals != nil {
		u.TotalMeals = *p.TotalMeals
	}
}

// Validate checks patch fields that have a closed value set.
func (p UserPatch) Validate() error {
	if p.Role != nil && !p.Role.Valid() {
		return NewValidationError("Invalid role")
	}
	return nil
}
