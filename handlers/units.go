// handlers/units.go
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/models"
)

type unitRequest struct {
	Title string `json:"title"`
	Level *int   `json:"level"`
	Color string `json:"color"`
}

// GetUnits returns all units ordered by level
// GET /units
func GetUnits(c *fiber.Ctx) error {
	db := database.GetDB()

	var units []models.Unit
	if err := db.Order("level ASC").Find(&units).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch units"})
	}

	return c.JSON(units)
}

// GetUnit returns a single unit
// GET /units/:id
func GetUnit(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	db := database.GetDB()
	var unit models.Unit
	if err := db.First(&unit, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Unidad no encontrada"})
	}

	return c.JSON(unit)
}

// CreateUnit creates a unit
// POST /units
func CreateUnit(c *fiber.Ctx) error {
	var req unitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Title == "" || req.Level == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan datos"})
	}

	unit := models.Unit{Title: req.Title, Level: *req.Level, Color: req.Color}

	db := database.GetDB()
	if err := db.Create(&unit).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create unit"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Unidad creada exitosamente",
		"unit_id": unit.ID,
	})
}

// UpdateUnit updates title and/or level of a unit
// PUT /units/:id
func UpdateUnit(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	var req unitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Level != nil {
		updates["level"] = *req.Level
	}
	if req.Color != "" {
		updates["color"] = req.Color
	}

	if len(updates) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No hay datos para actualizar"})
	}

	db := database.GetDB()
	result := db.Model(&models.Unit{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update unit"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Unidad no encontrada"})
	}

	return c.JSON(fiber.Map{"message": "Unidad actualizada exitosamente"})
}

// DeleteUnit deletes a unit
// DELETE /units/:id
func DeleteUnit(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}

	db := database.GetDB()
	result := db.Delete(&models.Unit{}, id)
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete unit"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Unidad no encontrada"})
	}

	return c.JSON(fiber.Map{"message": "Unidad eliminada exitosamente"})
}

// parseID reads a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseQueryID reads a numeric query parameter value.
func parseQueryID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
