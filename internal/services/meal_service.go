package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/calotrack/calorie-backend/internal/dto"
	"github.com/calotrack/calorie-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMealNotFound = errors.New("meal not found")
	ErrNotMealOwner = errors.New("you can only delete your own meals")
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

func (s *MealService) Add(userID uuid.UUID, req *dto.AddMealRequest) (*models.Meal, error) {
	if err := validateMealRequest(req); err != nil {
		return nil, err
	}

	meal := models.Meal{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     req.Name,
		Calories: req.Calories,
		MealType: req.MealType,
		Date:     req.Date,
		LoggedAt: time.Now().UTC(),
	}

	if err := s.db.Create(&meal).Error; err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	return &meal, nil
}

// List returns the user's meals for an exact calendar date, most recently
// logged first.
func (s *MealService) List(userID uuid.UUID, date string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.Where("user_id = ? AND date = ?", userID, date).
		Order("logged_at DESC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load meals: %w", err)
	}
	return meals, nil
}

// Delete removes a meal after checking ownership. The check lives here, not
// in the storage layer.
func (s *MealService) Delete(userID uuid.UUID, mealID uuid.UUID) error {
	var meal models.Meal
	if err := s.db.First(&meal, "id = ?", mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		return fmt.Errorf("failed to load meal: %w", err)
	}

	if meal.UserID != userID {
		return ErrNotMealOwner
	}

	return s.db.Delete(&meal).Error
}

func validateMealRequest(req *dto.AddMealRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if req.Calories <= 0 {
		return &ValidationError{Field: "calories", Reason: "must be a positive number"}
	}
	validType := false
	for _, t := range models.MealTypes {
		if t == req.MealType {
			validType = true
			break
		}
	}
	if !validType {
		return &ValidationError{Field: "mealType", Reason: "must be one of breakfast, lunch, dinner, snack"}
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return &ValidationError{Field: "date", Reason: "must be formatted YYYY-MM-DD"}
	}
	return nil
}
