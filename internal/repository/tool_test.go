package repository

import (
	"context"
	"testing"

	"toolhaven/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestToolUpsert_RerunOverwritesInPlace(t *testing.T) {
	db := setupTestDB(t)
	category := mustSeedCategory(t, db, "chatbots")
	repo := NewToolRepository(db)
	ctx := context.Background()

	first := &models.Tool{
		Slug:        "claude",
		Name:        "Claude",
		Tagline:     "Conversational AI assistant",
		PricingType: models.PricingFreemium,
		Rating:      4.7,
		ReviewCount: 1200,
		Features:    datatypes.NewJSONSlice([]string{"Long context", "File uploads"}),
		Pros:        datatypes.NewJSONSlice([]string{"Strong writing"}),
		Cons:        datatypes.NewJSONSlice([]string{"No image generation"}),
		CategoryID:  category.ID,
	}
	require.NoError(t, repo.Upsert(ctx, first))
	require.NotZero(t, first.ID)

	second := &models.Tool{
		Slug:        "claude",
		Name:        "Claude",
		Tagline:     "Updated tagline",
		PricingType: models.PricingFreemium,
		Rating:      4.8,
		ReviewCount: 1450,
		Features:    datatypes.NewJSONSlice([]string{"Long context", "File uploads", "Code execution"}),
		CategoryID:  category.ID,
	}
	require.NoError(t, repo.Upsert(ctx, second))

	var count int64
	db.Model(&models.Tool{}).Count(&count)
	assert.Equal(t, int64(1), count)

	stored, err := repo.GetBySlug(ctx, "claude")
	require.NoError(t, err)
	assert.Equal(t, "Updated tagline", stored.Tagline)
	assert.Equal(t, 4.8, stored.Rating)
	assert.Equal(t, 1450, stored.ReviewCount)
	assert.Equal(t, []string{"Long context", "File uploads", "Code execution"}, []string(stored.Features))
}

func TestToolSetTags_ReplacesAssociations(t *testing.T) {
	db := setupTestDB(t)
	category := mustSeedCategory(t, db, "chatbots")
	toolRepo := NewToolRepository(db)
	tagRepo := NewTagRepository(db)
	ctx := context.Background()

	writing := models.Tag{Slug: "writing", Name: "Writing"}
	coding := models.Tag{Slug: "coding", Name: "Coding"}
	require.NoError(t, tagRepo.Upsert(ctx, &writing))
	require.NoError(t, tagRepo.Upsert(ctx, &coding))

	tool := &models.Tool{Slug: "claude", Name: "Claude", CategoryID: category.ID}
	require.NoError(t, toolRepo.Upsert(ctx, tool))

	require.NoError(t, toolRepo.SetTags(ctx, tool, []models.Tag{writing}))
	require.NoError(t, toolRepo.SetTags(ctx, tool, []models.Tag{writing, coding}))

	stored, err := toolRepo.GetBySlug(ctx, "claude")
	require.NoError(t, err)
	require.Len(t, stored.Tags, 2)
}

func TestToolListByCategoryAndFeatured(t *testing.T) {
	db := setupTestDB(t)
	chatbots := mustSeedCategory(t, db, "chatbots")
	images := mustSeedCategory(t, db, "image-generation")
	repo := NewToolRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.Tool{Slug: "claude", Name: "Claude", Rating: 4.8, Featured: true, CategoryID: chatbots.ID}))
	require.NoError(t, repo.Upsert(ctx, &models.Tool{Slug: "chatgpt", Name: "ChatGPT", Rating: 4.6, CategoryID: chatbots.ID}))
	require.NoError(t, repo.Upsert(ctx, &models.Tool{Slug: "midjourney", Name: "Midjourney", Rating: 4.5, CategoryID: images.ID}))

	inCategory, err := repo.ListByCategory(ctx, chatbots.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, inCategory, 2)
	assert.Equal(t, "claude", inCategory[0].Slug, "highest rating first")

	featured, err := repo.ListFeatured(ctx, 10)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "claude", featured[0].Slug)
}
