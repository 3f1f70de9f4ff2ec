// handlers/leaderboard.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/middleware"
	"github.com/gcroch/TRP-2024/models"
	"github.com/gcroch/TRP-2024/services"
)

// GetLeaderboard returns every user ranked by XP descending, with the
// caller's entry flagged. De-duplication is by DNI so the viewer appears
// exactly once even when present in the stored list.
// GET /users
func GetLeaderboard(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	db := database.GetDB()

	var current models.User
	if err := db.First(&current, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}

	var users []models.User
	if err := db.Order("id ASC").Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	entries := services.Rank(users, current)
	return c.JSON(entries)
}

// GetLeaderboardRank returns the caller's 1-based place in the ranking
// GET /users/rank
func GetLeaderboardRank(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	db := database.GetDB()

	var current models.User
	if err := db.First(&current, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}

	var users []models.User
	if err := db.Order("id ASC").Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	entries := services.Rank(users, current)
	place, ok := services.RankOf(entries, current.DNI)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Usuario no está en el ranking"})
	}

	return c.JSON(fiber.Map{
		"DNI":  current.DNI,
		"rank": place,
		"exp":  current.XP,
	})
}
