package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal is a single logged meal, owned by exactly one user.
type Meal struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Calories  float64   `gorm:"not null" json:"calories"`
	MealType  string    `gorm:"size:20;not null" json:"mealType"`
	Date      string    `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	LoggedAt  time.Time `gorm:"not null;index" json:"loggedAt"`
	CreatedAt time.Time `json:"createdAt"`
}

var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}
