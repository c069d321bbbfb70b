package server

import (
	"sharebite/internal/models"
	"sharebite/internal/store"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /api/users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var in store.CreateUserInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}

	user, err := s.store.CreateUser(c.UserContext(), in)
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	return c.JSON(s.store.AllUsers())
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	user, err := s.store.GetUser(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.JSON(user)
}

// UpdateUser handles PATCH /api/users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	var patch models.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}

	user, err := s.store.UpdateUser(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.JSON(user)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	return c.JSON(s.store.FoodPostsByUser(c.Params("id")))
}

// GetUserRequests handles GET /api/users/:id/requests
func (s *Server) GetUserRequests(c *fiber.Ctx) error {
	return c.JSON(s.store.RequestsByUser(c.Params("id")))
}

// GetUserOrders handles GET /api/users/:id/orders
func (s *Server) GetUserOrders(c *fiber.Ctx) error {
	return c.JSON(s.store.OrdersByUser(c.Params("id")))
}
