package models

import "time"

// OrderStatus defines lifecycle states for orders.
type OrderStatus string

const (
	// OrderStatusPending indicates the order was placed but not confirmed.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed indicates the seller confirmed the order.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusDelivered indicates the food changed hands.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates either party cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a finalized transaction between a buyer and a seller, tracked
// independently of the request that may have led to it.
type Order struct {
	ID          string      `json:"id"`
	BuyerID     string      `json:"buyer_id"`
	SellerID    string      `json:"seller_id"`
	PostID      string      `json:"post_id"`
	Quantity    float64     `json:"quantity"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderPatch is a partial update for an Order. Nil fields are left untouched.
// ID, BuyerID, SellerID, PostID and CreatedAt cannot be patched.
type OrderPatch struct {
	Quantity    *float64     `json:"quantity"`
	TotalAmount *float64     `json:"total_amount"`
	Status      *OrderStatus `json:"status"`
}

// Apply merges the patch into the order, field by field.
func (p OrderPatch) Apply(o *Order) {
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.TotalAmount != nil {
		o.TotalAmount = *p.TotalAmount
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
}

// Validate checks patch fields that have a closed value set.
func (p OrderPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return NewValidationError("Invalid order status")
	}
	return nil
}
