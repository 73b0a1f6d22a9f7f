package repository

import (
	"context"
	"testing"
	"time"

	"toolhaven/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealUpsert_ExplicitIDIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDealRepository(db)
	ctx := context.Background()

	deal := &models.Deal{ID: "jasper-black-friday", ToolName: "Jasper", Discount: "30% off", Code: "BF30", IsActive: true, Order: 1}
	require.NoError(t, repo.Upsert(ctx, deal))

	deal.Discount = "40% off"
	require.NoError(t, repo.Upsert(ctx, deal))

	var count int64
	db.Model(&models.Deal{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var stored models.Deal
	require.NoError(t, db.First(&stored, "id = ?", "jasper-black-friday").Error)
	assert.Equal(t, "40% off", stored.Discount)
}

func TestDealListActive_FiltersExpiredAndInactive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDealRepository(db)
	ctx := context.Background()
	now := time.Now()

	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	require.NoError(t, repo.Upsert(ctx, &models.Deal{ID: "evergreen", ToolName: "Copy.ai", Discount: "20% off", IsActive: true, Order: 2}))
	require.NoError(t, repo.Upsert(ctx, &models.Deal{ID: "running", ToolName: "Jasper", Discount: "30% off", IsActive: true, ExpiresAt: &future, Order: 1}))
	require.NoError(t, repo.Upsert(ctx, &models.Deal{ID: "expired", ToolName: "Surfer", Discount: "50% off", IsActive: true, ExpiresAt: &past, Order: 3}))
	require.NoError(t, repo.Upsert(ctx, &models.Deal{ID: "disabled", ToolName: "Writesonic", Discount: "10% off", IsActive: false, Order: 4}))

	deals, err := repo.ListActive(ctx, now)
	require.NoError(t, err)
	require.Len(t, deals, 2)
	assert.Equal(t, "running", deals[0].ID, "display order respected")
	assert.Equal(t, "evergreen", deals[1].ID)

	// The expired row keeps its stored is_active flag; filtering is query-time only.
	var expired models.Deal
	require.NoError(t, db.First(&expired, "id = ?", "expired").Error)
	assert.True(t, expired.IsActive)
}

func TestComparisonUpsert_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComparisonRepository(db)
	ctx := context.Background()

	comparison := &models.Comparison{
		Slug:        "claude-vs-chatgpt",
		Title:       "Claude vs ChatGPT",
		Verdict:     "claude",
		VerdictText: "Claude edges ahead for long-form writing.",
		Published:   true,
	}
	require.NoError(t, repo.Upsert(ctx, comparison))

	comparison.VerdictText = "Updated verdict."
	require.NoError(t, repo.Upsert(ctx, comparison))

	var count int64
	db.Model(&models.Comparison{}).Count(&count)
	assert.Equal(t, int64(1), count)

	stored, err := repo.GetBySlug(ctx, "claude-vs-chatgpt")
	require.NoError(t, err)
	assert.Equal(t, "Updated verdict.", stored.VerdictText)
}
