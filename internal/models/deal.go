package models

import "time"

// Deal is a promotional discount for a listed tool. The ID is an explicit
// human-chosen key rather than an auto-increment. ExpiresAt nil means the
// deal never expires; nothing in this codebase flips IsActive when a deal
// passes its expiry, expiration is a data attribute only.
type Deal struct {
	ID        string     `gorm:"primaryKey;size:80" json:"id"`
	ToolName  string     `gorm:"size:120;not null" json:"tool_name"`
	Discount  string     `gorm:"size:80;not null" json:"discount"`
	Code      string     `gorm:"size:60" json:"code"`
	Category  string     `gorm:"size:80" json:"category"`
	URL       string     `gorm:"size:300" json:"url"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsActive  bool       `gorm:"index" json:"is_active"`
	Order     int        `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Deal) TableName() string {
	return "deals"
}
