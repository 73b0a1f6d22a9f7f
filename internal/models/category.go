// Package models contains data structures for the application's domain models.
package models

import "time"

// Category groups tools and blog posts into browsable directory sections.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"size:80;not null;uniqueIndex" json:"slug"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:80" json:"icon"`
	Order       int       `gorm:"column:display_order;default:0" json:"order"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Category) TableName() string {
	return "categories"
}
