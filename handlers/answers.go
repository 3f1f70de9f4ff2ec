// handlers/answers.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/models"
	"github.com/gcroch/TRP-2024/services"
)

type answerRequest struct {
	QuestionID     *uint   `json:"question_id"`
	UserID         *uint   `json:"user_id"`
	Body           *string `json:"body"`
	SelectedOption *int    `json:"selectedOption"`
}

// CreateAnswer records a submission and grades it. A correct first
// correct answer for a question awards the question's exp minus the
// penalty of any hints the user revealed.
// POST /answers
func CreateAnswer(c *fiber.Ctx) error {
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.QuestionID == nil || req.UserID == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan question_id o user_id"})
	}

	// Exactly one of body / selectedOption, matching the question type.
	if (req.Body == nil && req.SelectedOption == nil) || (req.Body != nil && req.SelectedOption != nil) {
		return c.Status(400).JSON(fiber.Map{
			"error": "Se debe proporcionar únicamente un campo: 'body' para preguntas OpenEntry o 'selectedOption' para preguntas Choice",
		})
	}

	db := database.GetDB()

	var question models.Question
	if err := db.Preload("Options", orderOptions).First(&question, *req.QuestionID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Pregunta no encontrada"})
	}

	var user models.User
	if err := db.First(&user, *req.UserID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}

	var correct bool
	switch question.Type {
	case models.QuestionChoice:
		if req.SelectedOption == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Pregunta Choice requiere 'selectedOption'"})
		}
		correct = services.GradeChoice(question, *req.SelectedOption)
	case models.QuestionOpenEntry:
		if req.Body == nil {
			return c.Status(400).JSON(fiber.Map{"error": "Pregunta OpenEntry requiere 'body'"})
		}
		correct = services.GradeOpenEntry(question, *req.Body)
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Tipo de pregunta no válido"})
	}

	answer := models.Answer{
		QuestionID:     question.ID,
		UserID:         user.ID,
		Body:           req.Body,
		SelectedOption: req.SelectedOption,
		Correct:        correct,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if correct {
			// Award exp only on the first correct answer for the question.
			var previous int64
			if err := tx.Model(&models.Answer{}).
				Where("question_id = ? AND user_id = ? AND correct = ?", question.ID, user.ID, true).
				Count(&previous).Error; err != nil {
				return err
			}
			if previous == 0 {
				var revealed []models.HelpReveal
				if err := tx.Where("question_id = ? AND user_id = ?", question.ID, user.ID).
					Find(&revealed).Error; err != nil {
					return err
				}
				answer.XPEarned = question.Exp - services.HintPenalty(question, revealed)
				if answer.XPEarned < 0 {
					answer.XPEarned = 0
				}
				if err := tx.Model(&user).Update("xp", gorm.Expr("xp + ?", answer.XPEarned)).Error; err != nil {
					return err
				}
			}
		}
		return tx.Create(&answer).Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record answer"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":   "Respuesta creada exitosamente",
		"answer_id": answer.ID,
		"correct":   answer.Correct,
		"xp_earned": answer.XPEarned,
	})
}

// GetAnswers lists answers, filterable by question and/or user
// GET /answers?question_id=&user_id=
func GetAnswers(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Order("id ASC")
	if raw := c.Query("question_id"); raw != "" {
		id, err := parseQueryID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "question_id inválido"})
		}
		query = query.Where("question_id = ?", id)
	}
	if raw := c.Query("user_id"); raw != "" {
		id, err := parseQueryID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "user_id inválido"})
		}
		query = query.Where("user_id = ?", id)
	}

	var answers []models.Answer
	if err := query.Find(&answers).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch answers"})
	}

	return c.JSON(answers)
}

// GetAnswer returns a single answer
// GET /answers/:id
func GetAnswer(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "answer_id inválido"})
	}

	db := database.GetDB()
	var answer models.Answer
	if err := db.First(&answer, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Respuesta no encontrada"})
	}

	return c.JSON(answer)
}

// DeleteAnswer removes an answer
// DELETE /answers/:id
func DeleteAnswer(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "answer_id inválido"})
	}

	db := database.GetDB()
	result := db.Delete(&models.Answer{}, id)
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete answer"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Respuesta no encontrada"})
	}

	return c.JSON(fiber.Map{"message": "Respuesta eliminada exitosamente"})
}
