package models

import "time"

// Tag is a free-form label attached to tools.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"size:80;not null;uniqueIndex" json:"slug"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Tag) TableName() string {
	return "tags"
}
