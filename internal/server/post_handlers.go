package server

import (
	"errors"
	"time"

	"toolhaven/internal/middleware"
	"toolhaven/internal/models"
	"toolhaven/internal/observability"
	"toolhaven/internal/seo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListPosts returns published blog posts, newest first.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	posts, err := s.postRepo.ListPublished(c.UserContext(), limit, offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// GetPost returns a published post with its JSON-LD snippets and freshness
// label, and bumps the view counter.
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	post, err := s.postRepo.GetBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("post", slug))
	}
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	// View counting is best effort; a failed bump never breaks the page.
	if err := s.postRepo.IncrementViews(ctx, slug); err != nil {
		middleware.Logger.Warn("view counter bump failed", "slug", slug, "error", err)
	}
	observability.ContentViews.WithLabelValues(slug).Inc()

	publishedAt := post.CreatedAt
	if post.PublishedAt != nil {
		publishedAt = *post.PublishedAt
	}

	pageURL := seo.BaseURL + "/blog/" + post.Slug
	article := seo.ArticleSnippet(seo.Article{
		Headline:      post.Title,
		Description:   post.MetaDescription,
		Image:         seo.BaseURL + post.CoverImage,
		Author:        "ToolHaven Editorial",
		DatePublished: publishedAt.Format(time.RFC3339),
		DateModified:  post.UpdatedAt.Format(time.RFC3339),
		PublisherName: "ToolHaven",
		PublisherLogo: seo.BaseURL + "/images/logo.png",
	})
	breadcrumb := seo.BreadcrumbSnippet([]seo.Crumb{
		{Name: "Home", URL: seo.BaseURL},
		{Name: "Blog", URL: seo.BaseURL + "/blog"},
		{Name: post.Title, URL: pageURL},
	})

	return c.JSON(fiber.Map{
		"post":         post,
		"last_updated": seo.LastUpdatedLabel(post.CreatedAt, post.UpdatedAt),
		"structured_data": fiber.Map{
			"article":    article,
			"breadcrumb": breadcrumb,
		},
	})
}
