// handlers/help.go - Hint reveal tracking
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/models"
)

type helpRequest struct {
	UserID     *uint `json:"user_id"`
	HelpNumber *int  `json:"helpNumber"`
}

// GetHelpStatus reports which hints of a question the user has revealed
// GET /questions/:id/help-status?user_id=
func GetHelpStatus(c *fiber.Ctx) error {
	questionID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "question_id inválido"})
	}

	userID, err := parseQueryID(c.Query("user_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "user_id inválido"})
	}

	db := database.GetDB()
	var reveals []models.HelpReveal
	if err := db.Where("question_id = ? AND user_id = ?", questionID, userID).
		Find(&reveals).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch help status"})
	}

	status := fiber.Map{"help1": false, "help2": false}
	for _, r := range reveals {
		switch r.HelpNumber {
		case 1:
			status["help1"] = true
		case 2:
			status["help2"] = true
		}
	}

	return c.JSON(status)
}

// RevealHelp marks a hint as seen. Idempotent: revealing the same hint
// twice is a no-op, so the penalty is charged at most once.
// POST /questions/:id/help
func RevealHelp(c *fiber.Ctx) error {
	questionID, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "question_id inválido"})
	}

	var req helpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UserID == nil || req.HelpNumber == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan user_id o helpNumber"})
	}
	if *req.HelpNumber != 1 && *req.HelpNumber != 2 {
		return c.Status(400).JSON(fiber.Map{"error": "helpNumber debe ser 1 o 2"})
	}

	db := database.GetDB()

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Pregunta no encontrada"})
	}

	hint := question.Hint1
	if *req.HelpNumber == 2 {
		hint = question.Hint2
	}
	if hint == nil {
		return c.Status(404).JSON(fiber.Map{"error": "La pregunta no tiene esa ayuda"})
	}

	reveal := models.HelpReveal{
		QuestionID: questionID,
		UserID:     *req.UserID,
		HelpNumber: *req.HelpNumber,
	}
	if err := db.Create(&reveal).Error; err != nil {
		// Unique index hit means the hint was already revealed; that is
		// fine, return it again. Anything else is a real failure.
		var existing models.HelpReveal
		lookupErr := db.Where("question_id = ? AND user_id = ? AND help_number = ?",
			questionID, *req.UserID, *req.HelpNumber).First(&existing).Error
		if lookupErr != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to record help reveal"})
		}
	}

	return c.JSON(fiber.Map{
		"text":    hint.Text,
		"penalty": hint.Penalty,
	})
}
