package repository

import (
	"context"

	"toolhaven/internal/models"
	"toolhaven/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	Upsert(ctx context.Context, tag *models.Tag) error
	GetBySlugs(ctx context.Context, slugs []string) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Upsert(ctx context.Context, tag *models.Tag) error {
	defer observability.TrackQuery("upsert", "tags")()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(tag).Error
	if err != nil {
		return err
	}

	if tag.ID == 0 {
		return r.db.WithContext(ctx).Where("slug = ?", tag.Slug).First(tag).Error
	}
	return nil
}

func (r *tagRepository) GetBySlugs(ctx context.Context, slugs []string) ([]models.Tag, error) {
	var tags []models.Tag
	if len(slugs) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&tags).Error
	return tags, err
}
