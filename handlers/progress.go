// handlers/progress.go - Completed questions and the learn path
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/middleware"
	"github.com/gcroch/TRP-2024/models"
	"github.com/gcroch/TRP-2024/services"
)

// GetUserProgress returns the caller's completed question ids grouped by
// unit: { "<unit_id>": [questionId, ...], ... }
// GET /user-progress
func GetUserProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	rows, err := completedByUnit(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch progress"})
	}

	return c.JSON(rows)
}

// GetLearnPath returns the units with tiles, per-tile status and layout
// placement derived for the caller.
// GET /learn-path?policy=random
func GetLearnPath(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	db := database.GetDB()

	var units []models.Unit
	if err := db.Order("level ASC").Find(&units).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch units"})
	}

	var questions []models.Question
	if err := db.Order("id ASC").Find(&questions).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch questions"})
	}

	completedIDs, err := completedQuestionIDs(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch progress"})
	}

	// Sequential unlocking is the product behavior; the random policy is
	// an opt-in leftover from an earlier iteration.
	policy := services.PolicySequential
	if c.Query("policy") == "random" {
		policy = services.PolicyRandom
	}

	path := services.BuildLearnPath(units, questions, services.NewCompletedSet(completedIDs), policy)
	return c.JSON(fiber.Map{"units": path})
}

// completedQuestionIDs returns the ids of questions the user answered
// correctly at least once.
func completedQuestionIDs(userID uint) ([]uint, error) {
	db := database.GetDB()
	var ids []uint
	err := db.Model(&models.Answer{}).
		Distinct("question_id").
		Where("user_id = ? AND correct = ?", userID, true).
		Order("question_id ASC").
		Pluck("question_id", &ids).Error
	return ids, err
}

// completedByUnit groups the user's completed question ids by unit id.
func completedByUnit(userID uint) (map[uint][]uint, error) {
	db := database.GetDB()

	var rows []struct {
		UnitID     uint
		QuestionID uint
	}
	err := db.Model(&models.Answer{}).
		Select("DISTINCT questions.unit_id AS unit_id, answers.question_id AS question_id").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.user_id = ? AND answers.correct = ?", userID, true).
		Order("question_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	grouped := make(map[uint][]uint)
	for _, r := range rows {
		grouped[r.UnitID] = append(grouped[r.UnitID], r.QuestionID)
	}
	return grouped, nil
}
