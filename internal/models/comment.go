package models

import "time"

// PostComment is a top-level comment on a post.
type PostComment struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	PostID      uint               `gorm:"not null;index" json:"post_id"`
	UserID      uint               `gorm:"not null;index" json:"user_id"`
	User        User               `gorm:"foreignKey:UserID" json:"user"`
	Comment     string             `gorm:"type:text;not null" json:"comment"`
	CreatedDate time.Time          `gorm:"not null" json:"createdDate"`
	Replies     []PostCommentReply `gorm:"foreignKey:PostCommentID" json:"replies,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// PostCommentReply is a second-level reply under a comment.
type PostCommentReply struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PostCommentID uint      `gorm:"not null;index" json:"post_comment_id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	User          User      `gorm:"foreignKey:UserID" json:"user"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	CreatedDate   time.Time `gorm:"not null" json:"createdDate"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
