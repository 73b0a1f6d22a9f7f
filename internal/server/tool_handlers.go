package server

import (
	"errors"
	"fmt"

	"toolhaven/internal/cache"
	"toolhaven/internal/models"
	"toolhaven/internal/seo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const defaultPageSize = 24

func pagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", defaultPageSize)
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListTools returns tool listings, optionally filtered by category slug or
// restricted to featured tools.
func (s *Server) ListTools(c *fiber.Ctx) error {
	ctx := c.UserContext()
	limit, offset := pagination(c)

	if categorySlug := c.Query("category"); categorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("category", categorySlug))
		}
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
		}
		tools, err := s.toolRepo.ListByCategory(ctx, category.ID, limit, offset)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
		}
		return c.JSON(fiber.Map{"tools": tools, "category": category})
	}

	if c.QueryBool("featured") {
		tools, err := s.toolRepo.ListFeatured(ctx, limit)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
		}
		return c.JSON(fiber.Map{"tools": tools})
	}

	var tools []*models.Tool
	key := fmt.Sprintf("tools:all:%d:%d", limit, offset)
	err := s.store.ReadThrough(ctx, key, &tools, cache.ListingTTL, func() error {
		var err error
		tools, err = s.toolRepo.List(ctx, limit, offset)
		return err
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"tools": tools})
}

// GetTool returns a single tool with its JSON-LD snippets for the detail page.
func (s *Server) GetTool(c *fiber.Ctx) error {
	slug := c.Params("slug")

	tool, err := s.toolRepo.GetBySlug(c.UserContext(), slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("tool", slug))
	}
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	pageURL := seo.BaseURL + "/tools/" + tool.Slug
	app := seo.SoftwareAppSnippet(seo.SoftwareApp{
		Name:                tool.Name,
		Description:         tool.Description,
		ApplicationCategory: tool.Category.Name,
		Price:               tool.StartingPrice,
		PriceCurrency:       "USD",
		URL:                 pageURL,
		RatingValue:         tool.Rating,
		ReviewCount:         tool.ReviewCount,
	})
	breadcrumb := seo.BreadcrumbSnippet([]seo.Crumb{
		{Name: "Home", URL: seo.BaseURL},
		{Name: tool.Category.Name, URL: seo.BaseURL + "/categories/" + tool.Category.Slug},
		{Name: tool.Name, URL: pageURL},
	})

	return c.JSON(fiber.Map{
		"tool": tool,
		"structured_data": fiber.Map{
			"software_application": app,
			"breadcrumb":           breadcrumb,
		},
	})
}
