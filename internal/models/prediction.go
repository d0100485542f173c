package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PredictionRecord stores one scorer invocation outcome. Rows are append-only:
// nothing in the API mutates them after creation.
type PredictionRecord struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	ActivityType string         `gorm:"size:100;not null" json:"activityType"`
	Weight       float64        `json:"weight"`
	Height       float64        `json:"height"`
	Age          int            `json:"age"`
	Duration     int            `json:"duration"`
	HeartRate    int            `json:"heartRate"`
	Calories     float64        `json:"calories"`
	Date         time.Time      `gorm:"not null;index" json:"date"`
	RawOutput    datatypes.JSON `json:"-"` // scorer stdout, kept for diagnostics
	CreatedAt    time.Time      `json:"createdAt"`
}
