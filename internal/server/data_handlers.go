package server

import (
	"sharebite/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetStats handles GET /api/stats
func (s *Server) GetStats(c *fiber.Ctx) error {
	return c.JSON(s.store.Stats())
}

// ExportData handles GET /api/export. The snapshot is a full copy of every
// collection, suitable for feeding back into the import endpoint.
func (s *Server) ExportData(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sharebite_backup.json"`)
	return c.JSON(s.store.Export())
}

// ImportData handles POST /api/import. The uploaded snapshot replaces all
// existing collections wholesale.
func (s *Server) ImportData(c *fiber.Ctx) error {
	var snap models.Snapshot
	if err := c.BodyParser(&snap); err != nil {
		return invalidBody(c)
	}

	if err := s.store.Import(c.UserContext(), snap); err != nil {
		return models.RespondWithError(c, mapStoreError(err), err)
	}

	return c.JSON(fiber.Map{
		"message":    "Data imported",
		"users":      len(snap.Users),
		"food_posts": len(snap.FoodPosts),
		"orders":     len(snap.Orders),
	})
}
