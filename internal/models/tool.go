package models

import (
	"time"

	"gorm.io/datatypes"
)

// PricingType describes how a tool charges its users.
type PricingType string

const (
	// PricingFree indicates a completely free tool.
	PricingFree PricingType = "free"
	// PricingFreemium indicates a free tier with paid upgrades.
	PricingFreemium PricingType = "freemium"
	// PricingPaid indicates a paid-only tool.
	PricingPaid PricingType = "paid"
)

// Tool is a directory listing for an AI product. The string-list fields are
// stored as JSON columns; the codec lives at the persistence edge so callers
// always see plain slices.
type Tool struct {
	ID              uint                        `gorm:"primaryKey" json:"id"`
	Slug            string                      `gorm:"size:120;not null;uniqueIndex" json:"slug"`
	Name            string                      `gorm:"size:120;not null" json:"name"`
	Tagline         string                      `gorm:"size:200" json:"tagline"`
	Description     string                      `gorm:"type:text" json:"description"`
	LongDescription string                      `gorm:"type:text" json:"long_description,omitempty"`
	Website         string                      `gorm:"size:300" json:"website"`
	PricingType     PricingType                 `gorm:"type:varchar(20);not null;default:'freemium'" json:"pricing_type"`
	StartingPrice   string                      `gorm:"size:40" json:"starting_price"`
	Rating          float64                     `json:"rating"`
	ReviewCount     int                         `json:"review_count"`
	Featured        bool                        `gorm:"default:false;index" json:"featured"`
	Trending        bool                        `gorm:"default:false" json:"trending"`
	Features        datatypes.JSONSlice[string] `json:"features"`
	Pros            datatypes.JSONSlice[string] `json:"pros"`
	Cons            datatypes.JSONSlice[string] `json:"cons"`
	UseCases        datatypes.JSONSlice[string] `json:"use_cases"`
	CategoryID      uint                        `gorm:"not null;index" json:"category_id"`
	Category        Category                    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags            []Tag                       `gorm:"many2many:tool_tags" json:"tags,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Tool) TableName() string {
	return "tools"
}
