package repository

import (
	"context"
	"testing"

	"toolhaven/internal/database"
	"toolhaven/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func mustSeedCategory(t *testing.T, db *gorm.DB, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Slug: slug, Name: slug, Published: true}
	if err := NewCategoryRepository(db).Upsert(context.Background(), category); err != nil {
		t.Fatalf("seed category %s: %v", slug, err)
	}
	return category
}
