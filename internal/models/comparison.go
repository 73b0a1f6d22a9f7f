package models

import "time"

// Comparison is a static head-to-head article between two named tools.
type Comparison struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"size:160;not null;uniqueIndex" json:"slug"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Verdict     string    `gorm:"size:120" json:"verdict"`
	VerdictText string    `gorm:"type:text" json:"verdict_text"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Comparison) TableName() string {
	return "comparisons"
}
