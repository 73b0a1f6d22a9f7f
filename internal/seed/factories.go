package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"toolhaven/internal/middleware"
	"toolhaven/internal/models"
	"toolhaven/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory creates randomized demo content on top of the built-in catalog.
// Intended for development databases only.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a Factory bound to the given DB handle.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateDemoContent generates numPosts draft posts spread across the seeded
// categories. Individual failures are logged and skipped so one bad row never
// aborts a demo run.
func (f *Factory) CreateDemoContent(ctx context.Context, numPosts int) {
	if numPosts <= 0 {
		numPosts = 20
	}

	categories, err := repository.NewCategoryRepository(f.db).ListPublished(ctx)
	if err != nil || len(categories) == 0 {
		middleware.Logger.Error("❌ demo content needs seeded categories", "error", err)
		return
	}

	created := 0
	for i := 0; i < numPosts; i++ {
		post := f.buildDraftPost(categories[f.rand.Intn(len(categories))])
		if err := f.db.WithContext(ctx).Create(post).Error; err != nil {
			middleware.Logger.Error("❌ demo post skipped", "slug", post.Slug, "error", err)
			continue
		}
		created++
	}

	middleware.Logger.Info(fmt.Sprintf("✓ %d demo posts created", created))
}

// buildDraftPost makes an unpublished post with a realistic created_at spread
// over the last 90 days, which gives the batch publisher something to walk.
func (f *Factory) buildDraftPost(category *models.Category) *models.BlogPost {
	title := strings.TrimSuffix(gofakeit.Sentence(6), ".")
	slug := slugify(title) + "-" + gofakeit.LetterN(6)

	daysBack := f.rand.Intn(90)
	hoursBack := f.rand.Intn(24)
	createdAt := time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	return &models.BlogPost{
		Slug:            slug,
		Title:           title,
		Excerpt:         gofakeit.Sentence(15),
		Content:         "<p>" + gofakeit.Paragraph(3, 4, 12, "</p><p>") + "</p>",
		MetaTitle:       title,
		MetaDescription: gofakeit.Sentence(12),
		FocusKeyword:    strings.ToLower(gofakeit.BuzzWord()),
		Published:       false,
		CategoryID:      category.ID,
		CreatedAt:       createdAt,
	}
}

func slugify(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
