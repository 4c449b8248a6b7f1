package models

import "time"

// Post represents a feed post in the Creel application.
type Post struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	UserID      uint          `gorm:"not null;index" json:"user_id"`
	User        User          `gorm:"foreignKey:UserID" json:"user"`
	Content     string        `gorm:"type:text;not null" json:"content"`
	CreatedDate time.Time     `gorm:"not null;index" json:"createdDate"`
	Images      []PostImage   `gorm:"foreignKey:PostID" json:"images,omitempty"`
	Comments    []PostComment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// PostImage is an opaque image reference (URL or blob key) attached to a post.
// The image set of a post is always replaced wholesale on update, never merged.
type PostImage struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	PostID uint   `gorm:"not null;index" json:"post_id"`
	Image  string `gorm:"size:512;not null" json:"image"`
}
