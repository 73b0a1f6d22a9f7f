package repository

import (
	"context"
	"time"

	"toolhaven/internal/models"
	"toolhaven/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var dealUpdateColumns = []string{
	"tool_name", "discount", "code", "category", "url",
	"expires_at", "is_active", "display_order", "updated_at",
}

// DealRepository defines the interface for deal data operations
type DealRepository interface {
	Upsert(ctx context.Context, deal *models.Deal) error
	ListActive(ctx context.Context, now time.Time) ([]*models.Deal, error)
}

type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) Upsert(ctx context.Context, deal *models.Deal) error {
	defer observability.TrackQuery("upsert", "deals")()

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(dealUpdateColumns),
	}).Create(deal).Error
}

// ListActive returns active deals that have not passed their expiry. Expired
// rows keep is_active untouched in storage; the filter is query-time only.
func (r *dealRepository) ListActive(ctx context.Context, now time.Time) ([]*models.Deal, error) {
	var deals []*models.Deal
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("display_order ASC").
		Find(&deals).Error
	return deals, err
}
