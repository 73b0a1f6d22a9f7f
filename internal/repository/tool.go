package repository

import (
	"context"

	"toolhaven/internal/models"
	"toolhaven/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// toolUpdateColumns are the columns overwritten when a tool slug already
// exists. Re-running the seeder updates listings in place.
var toolUpdateColumns = []string{
	"name", "tagline", "description", "long_description", "website",
	"pricing_type", "starting_price", "rating", "review_count",
	"featured", "trending", "features", "pros", "cons", "use_cases",
	"category_id", "updated_at",
}

// ToolRepository defines the interface for tool data operations
type ToolRepository interface {
	Upsert(ctx context.Context, tool *models.Tool) error
	SetTags(ctx context.Context, tool *models.Tool, tags []models.Tag) error
	GetBySlug(ctx context.Context, slug string) (*models.Tool, error)
	List(ctx context.Context, limit, offset int) ([]*models.Tool, error)
	ListByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Tool, error)
	ListFeatured(ctx context.Context, limit int) ([]*models.Tool, error)
}

type toolRepository struct {
	db *gorm.DB
}

// NewToolRepository creates a new tool repository
func NewToolRepository(db *gorm.DB) ToolRepository {
	return &toolRepository{db: db}
}

// Upsert creates or overwrites the tool row keyed by slug.
func (r *toolRepository) Upsert(ctx context.Context, tool *models.Tool) error {
	defer observability.TrackQuery("upsert", "tools")()

	err := r.db.WithContext(ctx).Omit("Tags", "Category").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns(toolUpdateColumns),
	}).Create(tool).Error
	if err != nil {
		return err
	}

	if tool.ID == 0 {
		return r.db.WithContext(ctx).Where("slug = ?", tool.Slug).First(tool).Error
	}
	return nil
}

// SetTags replaces the tool's tag associations with the given set.
func (r *toolRepository) SetTags(ctx context.Context, tool *models.Tool, tags []models.Tag) error {
	return r.db.WithContext(ctx).Model(tool).Association("Tags").Replace(tags)
}

func (r *toolRepository) GetBySlug(ctx context.Context, slug string) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&tool).Error
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

func (r *toolRepository) List(ctx context.Context, limit, offset int) ([]*models.Tool, error) {
	var tools []*models.Tool
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("featured DESC, rating DESC, name ASC").
		Limit(limit).
		Offset(offset).
		Find(&tools).Error
	return tools, err
}

func (r *toolRepository) ListByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Tool, error) {
	var tools []*models.Tool
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("rating DESC, name ASC").
		Limit(limit).
		Offset(offset).
		Find(&tools).Error
	return tools, err
}

func (r *toolRepository) ListFeatured(ctx context.Context, limit int) ([]*models.Tool, error) {
	var tools []*models.Tool
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("featured = ?", true).
		Order("rating DESC").
		Limit(limit).
		Find(&tools).Error
	return tools, err
}
