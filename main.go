// main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/handlers"
	"github.com/gcroch/TRP-2024/handlers/admin"
	"github.com/gcroch/TRP-2024/middleware"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	database.InitDB()
	defer func() {
		if err := database.CloseDB(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// Question images
	app.Static("/img", handlers.UploadDir)

	// Auth routes with stricter rate limiting
	app.Post("/login", middleware.AuthRateLimitMiddleware(), handlers.Login)
	app.Post("/register", middleware.AdminAuthMiddleware, handlers.Register)
	app.Get("/profile", middleware.AuthMiddleware, handlers.GetProfile)
	app.Put("/profile", middleware.AuthMiddleware, handlers.UpdateProfile)

	// Unit routes
	app.Get("/units", handlers.GetUnits)
	app.Post("/units", middleware.AdminAuthMiddleware, handlers.CreateUnit)
	app.Get("/units/:id", handlers.GetUnit)
	app.Put("/units/:id", middleware.AdminAuthMiddleware, handlers.UpdateUnit)
	app.Delete("/units/:id", middleware.AdminAuthMiddleware, handlers.DeleteUnit)

	// Question routes
	app.Get("/questions", handlers.GetQuestions)
	app.Post("/questions", middleware.AdminAuthMiddleware, handlers.CreateQuestion)
	app.Get("/questions/:id", handlers.GetQuestion)
	app.Put("/questions/:id", middleware.AdminAuthMiddleware, handlers.UpdateQuestion)
	app.Delete("/questions/:id", middleware.AdminAuthMiddleware, handlers.DeleteQuestion)
	app.Post("/questions/:id/image", middleware.AdminAuthMiddleware, handlers.UploadQuestionImage)

	// Hint reveal tracking
	app.Get("/questions/:id/help-status", middleware.AuthMiddleware, handlers.GetHelpStatus)
	app.Post("/questions/:id/help", middleware.AuthMiddleware, handlers.RevealHelp)

	// Answer routes
	app.Post("/answers", middleware.AuthMiddleware, handlers.CreateAnswer)
	app.Get("/answers", middleware.AuthMiddleware, handlers.GetAnswers)
	app.Get("/answers/:id", middleware.AuthMiddleware, handlers.GetAnswer)
	app.Delete("/answers/:id", middleware.AdminAuthMiddleware, handlers.DeleteAnswer)

	// Progress and learn path
	app.Get("/user-progress", middleware.AuthMiddleware, handlers.GetUserProgress)
	app.Get("/learn-path", middleware.AuthMiddleware, handlers.GetLearnPath)

	// Leaderboard
	app.Get("/users", middleware.AuthMiddleware, handlers.GetLeaderboard)
	app.Get("/users/rank", middleware.AuthMiddleware, handlers.GetLeaderboardRank)

	// Admin user management
	app.Get("/users/report", middleware.AdminAuthMiddleware, admin.GetUsersReport)
	app.Post("/users/upload", middleware.AdminAuthMiddleware, admin.UploadUsers)
	app.Get("/users/:id", middleware.AdminAuthMiddleware, admin.GetUser)
	app.Put("/users/:id", middleware.AdminAuthMiddleware, admin.UpdateUser)
	app.Delete("/users/:id", middleware.AdminAuthMiddleware, admin.DeleteUser)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
