package dto

import "github.com/calotrack/calorie-backend/internal/models"

type PredictRequest struct {
	ActivityType string  `json:"activityType"`
	Weight       float64 `json:"weight"`
	Height       float64 `json:"height"`
	Age          int     `json:"age"`
	Duration     int     `json:"duration"`
	HeartRate    int     `json:"heartRate"`
}

type PredictResponse struct {
	Success  bool    `json:"success"`
	Message  string  `json:"message"`
	Calories float64 `json:"calories"`
}

type HistoryResponse struct {
	Success bool                      `json:"success"`
	Data    []models.PredictionRecord `json:"data"`
}
