package handlers

import (
	"errors"
	"log/slog"

	"github.com/calotrack/calorie-backend/internal/dto"
	"github.com/calotrack/calorie-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	if _, err := h.authService.Register(&req); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
				Message: "Email is already in use",
			})
		}
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
				Message: vErr.Error(),
			})
		}
		slog.Error("registration failed", "action", "register", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Account created successfully",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{
				Message: "User not found",
			})
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
				Message: "Incorrect email or password",
			})
		}
		slog.Error("login failed", "action", "login", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(resp)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{
			Message: "User not found",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{
			Message: "Invalid request body",
		})
	}

	resp, err := h.authService.UpdateProfile(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{
				Message: "User not found",
			})
		}
		slog.Error("profile update failed", "action", "update_profile", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(resp)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
			Success: false, Message: "Invalid request body",
		})
	}
	if req.UserID == "" || req.OldPassword == "" || req.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
			Success: false, Message: "userId, oldPassword and newPassword are required",
		})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
			Success: false, Message: "Invalid userId",
		})
	}

	if err := h.authService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.StatusResponse{
				Success: false, Message: "User not found",
			})
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
				Success: false, Message: "Current password is incorrect",
			})
		}
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.StatusResponse{
				Success: false, Message: vErr.Error(),
			})
		}
		slog.Error("password change failed", "action", "change_password", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.StatusResponse{
			Success: false, Message: "Internal server error",
		})
	}

	return c.JSON(dto.StatusResponse{Success: true, Message: "Password changed successfully"})
}
