package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account with optional physiological profile fields used by the
// calorie predictor. Email is stored lowercase and unique.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Gender    string         `gorm:"size:20" json:"gender"`
	DOB       *time.Time     `json:"dob,omitempty"`
	Height    float64        `gorm:"default:0" json:"height"`
	Weight    float64        `gorm:"default:0" json:"weight"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
