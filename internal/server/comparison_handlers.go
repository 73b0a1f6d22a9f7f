package server

import (
	"errors"

	"toolhaven/internal/models"
	"toolhaven/internal/seo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListComparisons returns the published head-to-head articles.
func (s *Server) ListComparisons(c *fiber.Ctx) error {
	comparisons, err := s.comparisonRepo.ListPublished(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"comparisons": comparisons})
}

// GetComparison returns a single comparison with its breadcrumb snippet.
func (s *Server) GetComparison(c *fiber.Ctx) error {
	slug := c.Params("slug")

	comparison, err := s.comparisonRepo.GetBySlug(c.UserContext(), slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("comparison", slug))
	}
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	breadcrumb := seo.BreadcrumbSnippet([]seo.Crumb{
		{Name: "Home", URL: seo.BaseURL},
		{Name: "Comparisons", URL: seo.BaseURL + "/compare"},
		{Name: comparison.Title, URL: seo.BaseURL + "/compare/" + comparison.Slug},
	})

	return c.JSON(fiber.Map{
		"comparison": comparison,
		"structured_data": fiber.Map{
			"breadcrumb": breadcrumb,
		},
	})
}
