// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account in the Creel application.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Profile   *Profile  `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Posts     []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
