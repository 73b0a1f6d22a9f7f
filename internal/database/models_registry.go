package database

import "toolhaven/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Categories and tags migrate before the entities that reference them.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.Category{},
		&models.Tag{},
		&models.Tool{},
		&models.BlogPost{},
		&models.Deal{},
		&models.Comparison{},
	}
}
