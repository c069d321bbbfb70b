package server

import (
	"sharebite/internal/models"
	"sharebite/internal/store"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder handles POST /api/orders
func (s *Server) CreateOrder(c *fiber.Ctx) error {
	var in store.CreateOrderInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}

	order, err := s.store.CreateOrder(c.UserContext(), in)
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetOrders handles GET /api/orders
func (s *Server) GetOrders(c *fiber.Ctx) error {
	return c.JSON(s.store.AllOrders())
}

// GetOrder handles GET /api/orders/:id
func (s *Server) GetOrder(c *fiber.Ctx) error {
	order, err := s.store.GetOrder(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.JSON(order)
}

// UpdateOrder handles PATCH /api/orders/:id
func (s *Server) UpdateOrder(c *fiber.Ctx) error {
	var patch models.OrderPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}

	order, err := s.store.UpdateOrder(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.JSON(order)
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status
func (s *Server) UpdateOrderStatus(c *fiber.Ctx) error {
	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	order, err := s.store.UpdateOrderStatus(c.UserContext(), c.Params("id"), body.Status)
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.JSON(order)
}
