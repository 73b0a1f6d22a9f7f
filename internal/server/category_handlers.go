package server

import (
	"toolhaven/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListCategories returns the published directory sections in display order.
func (s *Server) ListCategories(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.ListPublished(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"categories": categories})
}
