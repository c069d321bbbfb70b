package server

import (
	"sharebite/internal/models"
	"sharebite/internal/store"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest handles POST /api/requests
func (s *Server) CreateRequest(c *fiber.Ctx) error {
	var in store.CreateRequestInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}

	req, err := s.store.CreateRequest(c.UserContext(), in)
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

// GetRequests handles GET /api/requests
func (s *Server) GetRequests(c *fiber.Ctx) error {
	return c.JSON(s.store.AllRequests())
}

// UpdateRequestStatus handles PATCH /api/requests/:id/status
func (s *Server) UpdateRequestStatus(c *fiber.Ctx) error {
	var body struct {
		Status models.RequestStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	req, err := s.store.UpdateRequestStatus(c.UserContext(), c.Params("id"), body.Status)
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.JSON(req)
}
