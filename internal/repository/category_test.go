package repository

import (
	"context"
	"testing"

	"toolhaven/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryUpsert_CreatesOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &models.Category{Slug: "ai-writing", Name: "AI Writing", Description: "Writing assistants", Published: true}
	require.NoError(t, repo.Upsert(ctx, category))
	assert.NotZero(t, category.ID)

	var count int64
	db.Model(&models.Category{}).Where("slug = ?", "ai-writing").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCategoryUpsert_ExistingRowLeftUntouched(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	original := &models.Category{Slug: "seo", Name: "SEO Tools", Description: "Search optimization", Published: true}
	require.NoError(t, repo.Upsert(ctx, original))

	// Second upsert with different fields must not overwrite the first.
	rerun := &models.Category{Slug: "seo", Name: "Totally Different", Description: "changed"}
	require.NoError(t, repo.Upsert(ctx, rerun))

	assert.Equal(t, original.ID, rerun.ID, "second upsert should resolve the existing row ID")

	stored, err := repo.GetBySlug(ctx, "seo")
	require.NoError(t, err)
	assert.Equal(t, "SEO Tools", stored.Name)
	assert.Equal(t, "Search optimization", stored.Description)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCategoryListPublished_OrderedAndFiltered(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.Category{Slug: "b-cat", Name: "Bravo", Order: 2, Published: true}))
	require.NoError(t, repo.Upsert(ctx, &models.Category{Slug: "a-cat", Name: "Alpha", Order: 1, Published: true}))
	require.NoError(t, repo.Upsert(ctx, &models.Category{Slug: "hidden", Name: "Hidden", Order: 0, Published: false}))

	categories, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "a-cat", categories[0].Slug)
	assert.Equal(t, "b-cat", categories[1].Slug)
}
