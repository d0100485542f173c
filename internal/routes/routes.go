package routes

import (
	"time"

	"github.com/calotrack/calorie-backend/internal/config"
	"github.com/calotrack/calorie-backend/internal/handlers"
	"github.com/calotrack/calorie-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	calorieHandler *handlers.CalorieHandler,
	mealHandler *handlers.MealHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Put("/profile/:id", authHandler.UpdateProfile)
	auth.Post("/change-password", authHandler.ChangePassword)

	// Predictions — JWT required
	calories := api.Group("/calories", middleware.JWTProtected(cfg))
	calories.Post("/predict", calorieHandler.Predict)
	calories.Get("/history", calorieHandler.History)

	// Meals — JWT required
	meals := api.Group("/meals", middleware.JWTProtected(cfg))
	meals.Post("/", mealHandler.Add)
	meals.Get("/", mealHandler.List)
	meals.Delete("/:mealId", mealHandler.Delete)
}
