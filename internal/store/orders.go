package store

import (
	"context"

	"sharebite/internal/models"
	"sharebite/internal/observability"
)

// CreateOrderInput carries the caller-supplied fields for a new order.
type CreateOrderInput struct {
	BuyerID     string  `json:"buyer_id"`
	SellerID    string  `json:"seller_id"`
	PostID      string  `json:"post_id"`
	Quantity    float64 `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
}

// CreateOrder appends a new pending order and persists the collection.
func (s *Store) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if in.BuyerID == "" {
		return nil, models.NewValidationError("Buyer ID is required")
	}
	if in.SellerID == "" {
		return nil, models.NewValidationError("Seller ID is required")
	}

	ctx, span := observability.TraceStoreOperation(ctx, "order", "create")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.Order{
		ID:          s.newID(),
		BuyerID:     in.BuyerID,
		SellerID:    in.SellerID,
		PostID:      in.PostID,
		Quantity:    in.Quantity,
		TotalAmount: in.TotalAmount,
		Status:      models.OrderStatusPending,
		CreatedAt:   s.now(),
	}

	s.orders = append(s.orders, order)
	if err := s.saveOrders(ctx); err != nil {
		return nil, err
	}

	observability.StoreMutations.WithLabelValues("order", "create").Inc()
	return &order, nil
}

// UpdateOrder shallow-merges the patch over the stored order.
func (s *Store) UpdateOrder(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	ctx, span := observability.TraceStoreOperation(ctx, "order", "update")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.orderIndex(id)
	if idx < 0 {
		return nil, models.NewNotFoundError("Order", id)
	}

	patch.Apply(&s.orders[idx])
	if err := s.saveOrders(ctx); err != nil {
		return nil, err
	}

	observability.StoreMutations.WithLabelValues("order", "update").Inc()
	updated := s.orders[idx]
	return &updated, nil
}

// UpdateOrderStatus sets the order status and stamps the update time.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("Invalid order status")
	}

	ctx, span := observability.TraceStoreOperation(ctx, "order", "update_status")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.orderIndex(id)
	if idx < 0 {
		return nil, models.NewNotFoundError("Order", id)
	}

	s.orders[idx].Status = status
	s.orders[idx].UpdatedAt = s.now()
	if err := s.saveOrders(ctx); err != nil {
		return nil, err
	}

	observability.StoreMutations.WithLabelValues("order", "update_status").Inc()
	updated := s.orders[idx]
	return &updated, nil
}

// GetOrder returns the order with the given id.
func (s *Store) GetOrder(id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.orderIndex(id)
	if idx < 0 {
		return nil, models.NewNotFoundError("Order", id)
	}
	order := s.orders[idx]
	return &order, nil
}

// AllOrders returns a copy of the order collection in insertion order.
func (s *Store) AllOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// OrdersByUser returns orders where the user is buyer or seller.
func (s *Store) OrdersByUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.BuyerID == userID || o.SellerID == userID {
			out = append(out, o)
		}
	}
	return out
}

// orderIndex returns the position of the order with the given id, or -1.
// Callers must hold the lock.
func (s *Store) orderIndex(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}
