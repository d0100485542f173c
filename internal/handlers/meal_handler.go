package handlers

import (
	"errors"
	"log/slog"

	"github.com/calotrack/calorie-backend/internal/dto"
	"github.com/calotrack/calorie-backend/internal/middleware"
	"github.com/calotrack/calorie-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MealHandler struct {
	mealService *services.MealService
}

func NewMealHandler(mealService *services.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

func (h *MealHandler) Add(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.StatusResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.AddMealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	meal, err := h.mealService.Add(userID, &req)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
				Success: false, Message: vErr.Error(),
			})
		}
		slog.Error("meal create failed", "action", "add_meal", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.StatusResponse{
			Success: false, Message: "Failed to save meal",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AddMealResponse{
		Success: true,
		Message: "Meal saved",
		Meal:    *meal,
	})
}

func (h *MealHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.StatusResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
			Success: false, Message: "date query parameter is required",
		})
	}

	meals, err := h.mealService.List(userID, date)
	if err != nil {
		slog.Error("meal list failed", "action", "list_meals", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.StatusResponse{
			Success: false, Message: "Failed to load meals",
		})
	}

	return c.JSON(dto.MealsResponse{Success: true, Data: meals})
}

func (h *MealHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.StatusResponse{
			Success: false, Message: "Unauthorized",
		})
	}

	mealID, err := uuid.Parse(c.Params("mealId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.StatusResponse{
			Success: false, Message: "Meal not found",
		})
	}

	if err := h.mealService.Delete(userID, mealID); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.StatusResponse{
				Success: false, Message: "Meal not found",
			})
		}
		if errors.Is(err, services.ErrNotMealOwner) {
			return c.Status(fiber.StatusForbidden).JSON(dto.StatusResponse{
				Success: false, Message: "You cannot delete this meal",
			})
		}
		slog.Error("meal delete failed", "action", "delete_meal", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.StatusResponse{
			Success: false, Message: "Failed to delete meal",
		})
	}

	return c.JSON(dto.StatusResponse{Success: true, Message: "Meal deleted"})
}
