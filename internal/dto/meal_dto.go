package dto

import "github.com/calotrack/calorie-backend/internal/models"

type AddMealRequest struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	MealType string  `json:"mealType"`
	Date     string  `json:"date"` // YYYY-MM-DD
}

type AddMealResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Meal    models.Meal `json:"meal"`
}

type MealsResponse struct {
	Success bool          `json:"success"`
	Data    []models.Meal `json:"data"`
}
