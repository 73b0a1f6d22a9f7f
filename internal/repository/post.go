package repository

import (
	"context"
	"time"

	"toolhaven/internal/models"
	"toolhaven/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postUpdateColumns are overwritten when a post slug already exists.
// published_at is deliberately absent: the stamp from the original create is
// preserved across re-seeds.
var postUpdateColumns = []string{
	"title", "excerpt", "content", "meta_title", "meta_description",
	"focus_keyword", "cover_image", "featured", "category_id",
	"published", "updated_at",
}

// PostRepository defines the interface for blog post data operations
type PostRepository interface {
	Upsert(ctx context.Context, post *models.BlogPost) error
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	ListPublished(ctx context.Context, limit, offset int) ([]*models.BlogPost, error)
	IncrementViews(ctx context.Context, slug string) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new blog post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Upsert creates or overwrites the post row keyed by slug. The create branch
// stamps published_at; the update branch overwrites editorial fields and
// keeps the row published without touching the original stamp.
func (r *postRepository) Upsert(ctx context.Context, post *models.BlogPost) error {
	defer observability.TrackQuery("upsert", "blog_posts")()

	post.Published = true
	if post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	err := r.db.WithContext(ctx).Omit("Category").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns(postUpdateColumns),
	}).Create(post).Error
	if err != nil {
		return err
	}

	// On the update branch the insert returns no ID; reload the canonical row
	// so the caller sees the preserved published_at.
	if post.ID == 0 {
		return r.db.WithContext(ctx).Where("slug = ?", post.Slug).First(post).Error
	}
	return nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListPublished(ctx context.Context, limit, offset int) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Category").
		Select("id", "slug", "title", "excerpt", "meta_title", "meta_description",
			"cover_image", "published", "published_at", "featured", "views",
			"category_id", "created_at", "updated_at").
		Where("published = ?", true).
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) IncrementViews(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("slug = ?", slug).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
