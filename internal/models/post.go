package models

import "time"

// BlogPost is an editorial article. PublishedAt is set once when the row is
// first created through the seeder and preserved on later upserts.
type BlogPost struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Slug            string     `gorm:"size:160;not null;uniqueIndex" json:"slug"`
	Title           string     `gorm:"size:200;not null" json:"title"`
	Excerpt         string     `gorm:"type:text" json:"excerpt"`
	Content         string     `gorm:"type:text" json:"content,omitempty"`
	MetaTitle       string     `gorm:"size:200" json:"meta_title"`
	MetaDescription string     `gorm:"size:320" json:"meta_description"`
	FocusKeyword    string     `gorm:"size:120" json:"focus_keyword"`
	CoverImage      string     `gorm:"size:300" json:"cover_image"`
	Published       bool       `gorm:"default:false;index" json:"published"`
	PublishedAt     *time.Time `json:"published_at"`
	Featured        bool       `gorm:"default:false" json:"featured"`
	Views           int64      `gorm:"default:0" json:"views"`
	CategoryID      uint       `gorm:"not null;index" json:"category_id"`
	Category        Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (BlogPost) TableName() string {
	return "blog_posts"
}
