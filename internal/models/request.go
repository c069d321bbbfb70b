package models

import "time"

// RequestStatus defines lifecycle states for food requests.
type RequestStatus string

const (
	// RequestStatusPending indicates the request is awaiting the owner's decision.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusAccepted indicates the owner agreed to hand over the food.
	RequestStatusAccepted RequestStatus = "accepted"
	// RequestStatusRejected indicates the owner declined the request.
	RequestStatusRejected RequestStatus = "rejected"
	// RequestStatusCompleted indicates the food was picked up.
	RequestStatusCompleted RequestStatus = "completed"
)

// Valid reports whether the status is one of the known values.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected, RequestStatusCompleted:
		return true
	}
	return false
}

// Request is a receiver's ask against a specific food post. It is contained
// by its parent post; UpdatedAt stays zero until the first status change.
type Request struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Quantity  float64       `json:"quantity"`
	Message   string        `json:"message"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// FlatRequest is a request annotated with its parent post, produced when
// flattening requests across all posts for cross-cutting queries.
type FlatRequest struct {
	Request
	PostID   string `json:"post_id"`
	PostName string `json:"post_name"`
}
