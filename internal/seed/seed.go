// Package seed populates the database with the editorial catalog: directory
// categories, tags, tool listings, blog posts, deals, and comparisons. Every
// upsert is keyed by slug so rerunning the seeder is always safe.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"toolhaven/internal/middleware"
	"toolhaven/internal/models"
	"toolhaven/internal/observability"
	"toolhaven/internal/repository"

	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	// Demo adds randomized filler content on top of the built-in catalog.
	Demo bool
	// DemoPosts is how many extra draft posts the demo factory creates.
	DemoPosts int
}

// Run seeds the built-in catalog inside a single transaction, parents before
// dependents. Either the whole catalog lands or none of it does.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	middleware.Logger.Info("🌱 seeding content catalog")

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedCategories(ctx, tx); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		if err := seedTags(ctx, tx); err != nil {
			return fmt.Errorf("seed tags: %w", err)
		}
		if err := seedTools(ctx, tx); err != nil {
			return fmt.Errorf("seed tools: %w", err)
		}
		if err := seedPosts(ctx, tx); err != nil {
			return fmt.Errorf("seed posts: %w", err)
		}
		if err := seedDeals(ctx, tx); err != nil {
			return fmt.Errorf("seed deals: %w", err)
		}
		if err := seedComparisons(ctx, tx); err != nil {
			return fmt.Errorf("seed comparisons: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if opts.Demo {
		f := NewFactory(db)
		f.CreateDemoContent(ctx, opts.DemoPosts)
	}

	middleware.Logger.Info("✓ catalog seeded")
	return nil
}

func seedCategories(ctx context.Context, tx *gorm.DB) error {
	repo := repository.NewCategoryRepository(tx)
	for _, item := range builtInCategories {
		category := models.Category{
			Slug:        item.Slug,
			Name:        item.Name,
			Description: item.Description,
			Icon:        item.Icon,
			Order:       item.Order,
			Published:   item.Published,
		}
		if err := repo.Upsert(ctx, &category); err != nil {
			return fmt.Errorf("category %q: %w", item.Slug, err)
		}
		observability.SeedUpserts.WithLabelValues("category").Inc()
	}
	middleware.Logger.Info("✓ categories seeded", slog.Int("count", len(builtInCategories)))
	return nil
}

func seedTags(ctx context.Context, tx *gorm.DB) error {
	repo := repository.NewTagRepository(tx)
	for _, item := range builtInTags {
		tag := item
		if err := repo.Upsert(ctx, &tag); err != nil {
			return fmt.Errorf("tag %q: %w", item.Slug, err)
		}
		observability.SeedUpserts.WithLabelValues("tag").Inc()
	}
	middleware.Logger.Info("✓ tags seeded", slog.Int("count", len(builtInTags)))
	return nil
}

func seedTools(ctx context.Context, tx *gorm.DB) error {
	tools := repository.NewToolRepository(tx)
	categories := repository.NewCategoryRepository(tx)
	tags := repository.NewTagRepository(tx)

	for _, item := range builtInTools {
		category, err := categories.GetBySlug(ctx, item.CategorySlug)
		if err != nil {
			return fmt.Errorf("tool %q: category %q: %w", item.Slug, item.CategorySlug, err)
		}

		tool := item.Tool
		tool.CategoryID = category.ID
		if err := tools.Upsert(ctx, &tool); err != nil {
			return fmt.Errorf("tool %q: %w", item.Slug, err)
		}

		if len(item.TagSlugs) > 0 {
			linked, err := tags.GetBySlugs(ctx, item.TagSlugs)
			if err != nil {
				return fmt.Errorf("tool %q: tags: %w", item.Slug, err)
			}
			if err := tools.SetTags(ctx, &tool, linked); err != nil {
				return fmt.Errorf("tool %q: set tags: %w", item.Slug, err)
			}
		}
		observability.SeedUpserts.WithLabelValues("tool").Inc()
	}
	middleware.Logger.Info("✓ tools seeded", slog.Int("count", len(builtInTools)))
	return nil
}

func seedPosts(ctx context.Context, tx *gorm.DB) error {
	posts := repository.NewPostRepository(tx)
	categories := repository.NewCategoryRepository(tx)

	for _, item := range builtInPosts {
		category, err := categories.GetBySlug(ctx, item.CategorySlug)
		if err != nil {
			return fmt.Errorf("post %q: category %q: %w", item.Slug, item.CategorySlug, err)
		}

		post := item.BlogPost
		post.CategoryID = category.ID
		if err := posts.Upsert(ctx, &post); err != nil {
			return fmt.Errorf("post %q: %w", item.Slug, err)
		}
		observability.SeedUpserts.WithLabelValues("post").Inc()
	}
	middleware.Logger.Info("✓ posts seeded", slog.Int("count", len(builtInPosts)))
	return nil
}

func seedDeals(ctx context.Context, tx *gorm.DB) error {
	repo := repository.NewDealRepository(tx)
	for _, item := range builtInDeals {
		deal := item
		if err := repo.Upsert(ctx, &deal); err != nil {
			return fmt.Errorf("deal %q: %w", item.ID, err)
		}
		observability.SeedUpserts.WithLabelValues("deal").Inc()
	}
	middleware.Logger.Info("✓ deals seeded", slog.Int("count", len(builtInDeals)))
	return nil
}

func seedComparisons(ctx context.Context, tx *gorm.DB) error {
	repo := repository.NewComparisonRepository(tx)
	for _, item := range builtInComparisons {
		comparison := item
		if err := repo.Upsert(ctx, &comparison); err != nil {
			return fmt.Errorf("comparison %q: %w", item.Slug, err)
		}
		observability.SeedUpserts.WithLabelValues("comparison").Inc()
	}
	middleware.Logger.Info("✓ comparisons seeded", slog.Int("count", len(builtInComparisons)))
	return nil
}
