// Package repository provides data access for the content entities. Every
// repository takes an explicit *gorm.DB so callers (and tests) control the
// connection instead of a module-level singleton.
package repository

import (
	"context"

	"toolhaven/internal/models"
	"toolhaven/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Upsert(ctx context.Context, category *models.Category) error
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	ListPublished(ctx context.Context) ([]*models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Upsert creates the category if the slug is absent. An existing row is left
// untouched; either way the receiver carries the persisted ID afterwards.
func (r *categoryRepository) Upsert(ctx context.Context, category *models.Category) error {
	defer observability.TrackQuery("upsert", "categories")()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(category).Error
	if err != nil {
		return err
	}

	if category.ID == 0 {
		return r.db.WithContext(ctx).Where("slug = ?", category.Slug).First(category).Error
	}
	return nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListPublished(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("display_order ASC, name ASC").
		Find(&categories).Error
	return categories, err
}
