package server

import (
	"strings"

	"sharebite/internal/models"
	"sharebite/internal/store"

	"github.com/gofiber/fiber/v2"
)

// CreateFoodPost handles POST /api/posts
func (s *Server) CreateFoodPost(c *fiber.Ctx) error {
	var in store.CreateFoodPostInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}

	post, err := s.store.CreateFoodPost(c.UserContext(), in)
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetFoodPosts handles GET /api/posts
func (s *Server) GetFoodPosts(c *fiber.Ctx) error {
	return c.JSON(s.store.AllFoodPosts())
}

// GetFoodPost handles GET /api/posts/:id
func (s *Server) GetFoodPost(c *fiber.Ctx) error {
	post, err := s.store.GetFoodPost(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.JSON(post)
}

// UpdateFoodPost handles PATCH /api/posts/:id
func (s *Server) UpdateFoodPost(c *fiber.Ctx) error {
	var patch models.FoodPostPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}

	post, err := s.store.UpdateFoodPost(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.JSON(post)
}

// DeleteFoodPost handles DELETE /api/posts/:id
func (s *Server) DeleteFoodPost(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := s.store.DeleteFoodPost(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}
	if !deleted {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Food post", id))
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SearchFoodPosts handles GET /api/posts/search?q=...&food_type=...&category=...&max_price=...
func (s *Server) SearchFoodPosts(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))

	filters := store.Filters{
		FoodType: c.Query("food_type"),
		Category: c.Query("category"),
	}
	if raw := c.Query("max_price"); raw != "" {
		maxPrice := c.QueryFloat("max_price", -1)
		if maxPrice < 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("max_price must be a non-negative number"))
		}
		filters.MaxPrice = &maxPrice
	}

	return c.JSON(s.store.SearchFoodPosts(query, filters))
}

// IncrementPostViews handles POST /api/posts/:id/views
func (s *Server) IncrementPostViews(c *fiber.Ctx) error {
	views, err := s.store.IncrementViews(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.JSON(fiber.Map{"views": views})
}

// GetPostRequests handles GET /api/posts/:id/requests
func (s *Server) GetPostRequests(c *fiber.Ctx) error {
	return c.JSON(s.store.RequestsByPost(c.Params("id")))
}
