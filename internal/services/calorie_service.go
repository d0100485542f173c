package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/calotrack/calorie-backend/internal/dto"
	"github.com/calotrack/calorie-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrSavePrediction wraps persistence failures that happen after the scorer
// already succeeded, so callers can tell "the model failed" from "the model
// succeeded but saving failed".
var ErrSavePrediction = errors.New("failed to save prediction")

// ValidationError reports a missing or out-of-range request field. It always
// maps to a 400 and is raised before any subprocess is spawned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type CalorieService struct {
	db     *gorm.DB
	scorer Scorer
}

func NewCalorieService(db *gorm.DB, scorer Scorer) *CalorieService {
	return &CalorieService{db: db, scorer: scorer}
}

// Predict validates the request, invokes the scorer once and persists the
// outcome bound to the authenticated user. No retries.
func (s *CalorieService) Predict(ctx context.Context, userID uuid.UUID, req *dto.PredictRequest) (*models.PredictionRecord, error) {
	if err := validatePredictRequest(req); err != nil {
		return nil, err
	}

	result, err := s.scorer.Score(ctx, PredictionInput{
		ActivityType: req.ActivityType,
		Weight:       req.Weight,
		Height:       req.Height,
		Age:          req.Age,
		Duration:     req.Duration,
		HeartRate:    req.HeartRate,
	})
	if err != nil {
		return nil, err
	}

	record := models.PredictionRecord{
		ID:           uuid.New(),
		UserID:       userID,
		ActivityType: req.ActivityType,
		Weight:       req.Weight,
		Height:       req.Height,
		Age:          req.Age,
		Duration:     req.Duration,
		HeartRate:    req.HeartRate,
		Calories:     result.Calories,
		Date:         time.Now().UTC(),
		RawOutput:    datatypes.JSON(result.Raw),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSavePrediction, err)
	}

	return &record, nil
}

// History returns the user's prediction records, newest first.
func (s *CalorieService) History(userID uuid.UUID) ([]models.PredictionRecord, error) {
	var records []models.PredictionRecord
	if err := s.db.Where("user_id = ?", userID).Order("date DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return records, nil
}

// validatePredictRequest requires every field present and strictly positive.
// A literal zero is rejected with a field-naming error rather than being
// conflated with "missing".
func validatePredictRequest(req *dto.PredictRequest) error {
	if strings.TrimSpace(req.ActivityType) == "" {
		return &ValidationError{Field: "activityType", Reason: "is required"}
	}
	numeric := []struct {
		field string
		value float64
	}{
		{"weight", req.Weight},
		{"height", req.Height},
		{"age", float64(req.Age)},
		{"duration", float64(req.Duration)},
		{"heartRate", float64(req.HeartRate)},
	}
	for _, n := range numeric {
		if n.value <= 0 {
			return &ValidationError{Field: n.field, Reason: "must be a positive number"}
		}
	}
	return nil
}
