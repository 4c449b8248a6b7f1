package models

import "time"

// ExperiencePerLevel is the amount of experience that spans one level.
// Level is always derived as experience / ExperiencePerLevel (integer
// division); it is never written independently of experience.
const ExperiencePerLevel = 1000

// Profile holds the public profile and engagement progression of a user.
// Experience and Level mutate only through the progression service, never
// from client-supplied fields.
type Profile struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Avatar     string    `gorm:"size:255" json:"avatar"`
	Experience int       `gorm:"not null;default:0" json:"experience"`
	Level      int       `gorm:"not null;default:0" json:"level"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
