package repository

import (
	"context"

	"toolhaven/internal/models"
	"toolhaven/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ComparisonRepository defines the interface for comparison data operations
type ComparisonRepository interface {
	Upsert(ctx context.Context, comparison *models.Comparison) error
	GetBySlug(ctx context.Context, slug string) (*models.Comparison, error)
	ListPublished(ctx context.Context) ([]*models.Comparison, error)
}

type comparisonRepository struct {
	db *gorm.DB
}

// NewComparisonRepository creates a new comparison repository
func NewComparisonRepository(db *gorm.DB) ComparisonRepository {
	return &comparisonRepository{db: db}
}

func (r *comparisonRepository) Upsert(ctx context.Context, comparison *models.Comparison) error {
	defer observability.TrackQuery("upsert", "comparisons")()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "verdict", "verdict_text", "published", "updated_at"}),
	}).Create(comparison).Error
	if err != nil {
		return err
	}

	if comparison.ID == 0 {
		return r.db.WithContext(ctx).Where("slug = ?", comparison.Slug).First(comparison).Error
	}
	return nil
}

func (r *comparisonRepository) GetBySlug(ctx context.Context, slug string) (*models.Comparison, error) {
	var comparison models.Comparison
	err := r.db.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		First(&comparison).Error
	if err != nil {
		return nil, err
	}
	return &comparison, nil
}

func (r *comparisonRepository) ListPublished(ctx context.Context) ([]*models.Comparison, error) {
	var comparisons []*models.Comparison
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("title ASC").
		Find(&comparisons).Error
	return comparisons, err
}
