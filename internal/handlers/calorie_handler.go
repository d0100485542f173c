package handlers

import (
	"errors"
	"log/slog"

	"github.com/calotrack/calorie-backend/internal/dto"
	"github.com/calotrack/calorie-backend/internal/middleware"
	"github.com/calotrack/calorie-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CalorieHandler struct {
	calorieService *services.CalorieService
}

func NewCalorieHandler(calorieService *services.CalorieService) *CalorieHandler {
	return &CalorieHandler{calorieService: calorieService}
}

// Predict handles POST /calories/predict. Validation and auth failures are
// reported before any subprocess is spawned; scorer and storage failures map
// to a generic 500 while the detail goes to the log.
func (h *CalorieHandler) Predict(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.StatusResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	record, err := h.calorieService.Predict(c.UserContext(), userID, &req)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
				Success: false, Message: vErr.Error(),
			})
		}
		if errors.Is(err, services.ErrSavePrediction) {
			slog.Error("prediction save failed", "action", "predict", "user_id", userID.String(), "error", err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.StatusResponse{
				Success: false, Message: "Prediction succeeded but could not be saved",
			})
		}
		slog.Error("prediction failed", "action", "predict", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.StatusResponse{
			Success: false, Message: "Prediction failed",
		})
	}

	return c.JSON(dto.PredictResponse{
		Success:  true,
		Message:  "Prediction saved",
		Calories: record.Calories,
	})
}

// History handles GET /calories/history, newest first.
func (h *CalorieHandler) History(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.StatusResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	records, err := h.calorieService.History(userID)
	if err != nil {
		slog.Error("history load failed", "action", "history", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.StatusResponse{
			Success: false, Message: "Failed to load history",
		})
	}

	return c.JSON(dto.HistoryResponse{Success: true, Data: records})
}
