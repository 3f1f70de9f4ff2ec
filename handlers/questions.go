// handlers/questions.go
package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/models"
)

// UploadDir is where question images land. Overridable for tests.
var UploadDir = "./img"

var allowedImageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
}

type optionRequest struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type hintRequest struct {
	Text    string   `json:"text"`
	Penalty *float64 `json:"penalty"`
}

type questionRequest struct {
	Type           string          `json:"type"`
	Body           string          `json:"body"`
	Exp            *int            `json:"exp"`
	UnitID         *uint           `json:"unit_id"`
	Options        []optionRequest `json:"options"`
	ExpectedAnswer string          `json:"expectedAnswer"`
	ImagePath      string          `json:"imagePath"`
	Hint1          *hintRequest    `json:"hint1"`
	Hint2          *hintRequest    `json:"hint2"`
}

// GetQuestions returns questions, optionally filtered by unit
// GET /questions?unit_id=
func GetQuestions(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Preload("Options", orderOptions).Order("id ASC")
	if raw := c.Query("unit_id"); raw != "" {
		unitID, err := parseQueryID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "unit_id inválido"})
		}
		query = query.Where("unit_id = ?", unitID)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch questions"})
	}

	return c.JSON(questions)
}

// GetQuestion returns a single question
// GET /questions/:id
func GetQuestion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "question_id inválido"})
	}

	db := database.GetDB()
	var question models.Question
	if err := db.Preload("Options", orderOptions).First(&question, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Pregunta no encontrada"})
	}

	return c.JSON(question)
}

// CreateQuestion creates a question with its type-specific payload
// POST /questions
func CreateQuestion(c *fiber.Ctx) error {
	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Type == "" || req.Body == "" || req.Exp == nil || req.UnitID == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Falta un campo requerido: type, body, exp o unit_id"})
	}

	db := database.GetDB()

	var unit models.Unit
	if err := db.First(&unit, *req.UnitID).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unidad no existe"})
	}

	question := models.Question{
		UnitID:    *req.UnitID,
		Type:      req.Type,
		Body:      req.Body,
		Exp:       *req.Exp,
		ImagePath: req.ImagePath,
	}

	switch req.Type {
	case models.QuestionChoice:
		if len(req.Options) == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Faltan las opciones para pregunta tipo Choice"})
		}
		question.Options = buildOptions(req.Options)
	case models.QuestionOpenEntry:
		if req.ExpectedAnswer == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Falta la respuesta esperada para pregunta tipo OpenEntry"})
		}
		question.ExpectedAnswer = req.ExpectedAnswer
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Tipo de pregunta no válido"})
	}

	for i, h := range []*hintRequest{req.Hint1, req.Hint2} {
		if h == nil {
			continue
		}
		hint, ok := buildHint(h)
		if !ok {
			return c.Status(400).JSON(fiber.Map{
				"error": fmt.Sprintf("hint%d inválido. Debe tener 'text' y 'penalty' entre 0 y 1", i+1),
			})
		}
		if i == 0 {
			question.Hint1 = hint
		} else {
			question.Hint2 = hint
		}
	}

	if err := db.Create(&question).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create question"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":     "Pregunta creada",
		"question_id": question.ID,
	})
}

// UpdateQuestion updates the provided fields of a question
// PUT /questions/:id
func UpdateQuestion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "question_id inválido"})
	}

	var req questionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()
	var question models.Question
	if err := db.First(&question, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Pregunta no encontrada"})
	}

	updates := map[string]interface{}{}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.Body != "" {
		updates["body"] = req.Body
	}
	if req.Exp != nil {
		updates["exp"] = *req.Exp
	}
	if req.ExpectedAnswer != "" {
		updates["expected_answer"] = req.ExpectedAnswer
	}
	if req.ImagePath != "" {
		updates["image_path"] = req.ImagePath
	}
	if req.UnitID != nil {
		var unit models.Unit
		if err := db.First(&unit, *req.UnitID).Error; err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Unidad no existe"})
		}
		updates["unit_id"] = *req.UnitID
	}

	for i, h := range []*hintRequest{req.Hint1, req.Hint2} {
		if h == nil {
			continue
		}
		hint, ok := buildHint(h)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("hint%d inválido", i+1)})
		}
		updates[fmt.Sprintf("hint%d", i+1)] = hint
	}

	if len(updates) == 0 && req.Options == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Nada que actualizar"})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&question).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Options != nil {
			if err := tx.Where("question_id = ?", question.ID).Delete(&models.Option{}).Error; err != nil {
				return err
			}
			options := buildOptions(req.Options)
			for i := range options {
				options[i].QuestionID = question.ID
			}
			if len(options) > 0 {
				if err := tx.Create(&options).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update question"})
	}

	return c.JSON(fiber.Map{"message": "Actualizada exitosamente"})
}

// DeleteQuestion deletes a question and its options
// DELETE /questions/:id
func DeleteQuestion(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "question_id inválido"})
	}

	db := database.GetDB()

	var deleted int64
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.Option{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Question{}, id)
		deleted = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete question"})
	}
	if deleted == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Pregunta no encontrada"})
	}

	return c.JSON(fiber.Map{"message": "Eliminada exitosamente"})
}

// UploadQuestionImage stores a multipart image and links it to a question
// POST /questions/:id/image
func UploadQuestionImage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "question_id inválido"})
	}

	db := database.GetDB()
	var question models.Question
	if err := db.First(&question, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Pregunta no encontrada"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No se envió imagen"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return c.Status(400).JSON(fiber.Map{"error": "Archivo no válido"})
	}

	// Random filename, the client-supplied name is untrusted.
	filename := uuid.New().String() + ext
	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store image"})
	}
	if err := c.SaveFile(file, filepath.Join(UploadDir, filename)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store image"})
	}

	if err := db.Model(&question).Update("image_path", filename).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update question"})
	}

	return c.JSON(fiber.Map{"imageUrl": "/img/" + filename})
}

func buildOptions(reqs []optionRequest) []models.Option {
	options := make([]models.Option, 0, len(reqs))
	for i, o := range reqs {
		options = append(options, models.Option{
			Position:  i,
			Text:      o.Text,
			IsCorrect: o.IsCorrect,
		})
	}
	return options
}

// buildHint validates the hint payload: non-empty text, penalty in [0, 1].
func buildHint(h *hintRequest) (*models.Hint, bool) {
	if h.Penalty == nil || strings.TrimSpace(h.Text) == "" {
		return nil, false
	}
	if *h.Penalty < 0 || *h.Penalty > 1 {
		return nil, false
	}
	return &models.Hint{Text: strings.TrimSpace(h.Text), Penalty: *h.Penalty}, true
}

func orderOptions(db *gorm.DB) *gorm.DB {
	return db.Order("options.position ASC")
}
