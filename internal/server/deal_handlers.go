package server

import (
	"time"

	"toolhaven/internal/cache"
	"toolhaven/internal/models"

	"github.com/gofiber/fiber/v2"
)

const dealsCacheKey = "deals:active"

// ListDeals returns non-expired active deals in display order. The listing is
// cached briefly since it appears on every page of the site.
func (s *Server) ListDeals(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var deals []*models.Deal
	err := s.store.ReadThrough(ctx, dealsCacheKey, &deals, cache.ListingTTL, func() error {
		var err error
		deals, err = s.dealRepo.ListActive(ctx, time.Now())
		return err
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{"deals": deals})
}
