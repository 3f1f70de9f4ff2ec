// handlers/admin/users.go - Admin user management
package admin

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/models"
	"github.com/gcroch/TRP-2024/services"
	"github.com/gcroch/TRP-2024/utils"
)

// GetUser returns a single user by ID
// GET /users/:id
func GetUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}

	return c.JSON(user)
}

// UpdateUser updates a user's information
// PUT /users/:id
func UpdateUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}

	var updateData struct {
		Name     string `json:"name"`
		Lastname string `json:"lastname"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		XP       *int   `json:"exp"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if updateData.Name != "" {
		user.Name = updateData.Name
	}
	if updateData.Lastname != "" {
		user.Lastname = updateData.Lastname
	}
	if updateData.Email != "" {
		email := updateData.Email
		user.Email = &email
	}
	if updateData.Role != "" {
		if updateData.Role != models.RoleUser && updateData.Role != models.RoleAdmin {
			return c.Status(400).JSON(fiber.Map{"error": "Rol inválido"})
		}
		user.Role = updateData.Role
	}
	if updateData.XP != nil {
		user.XP = *updateData.XP
	}
	if updateData.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(updateData.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
		}
		user.Password = string(hashed)
	}

	if err := db.Save(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"message": "Usuario actualizado exitosamente"})
}

// DeleteUser removes a user
// DELETE /users/:id
func DeleteUser(c *fiber.Ctx) error {
	db := database.GetDB()
	id := c.Params("id")

	result := db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}

	return c.JSON(fiber.Map{"message": "Usuario eliminado exitosamente"})
}

// UploadUsers bulk-imports users from a CSV file with columns
// DNI,name,lastname,email. Each created user gets a generated password
// mailed to them. Rows with an existing DNI are skipped.
// POST /users/upload
func UploadUsers(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No se envió archivo"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read file"})
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	db := database.GetDB()

	created := 0
	skipped := 0
	var rowErrors []string

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("línea %d: %v", line, err))
			continue
		}

		// Header row
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "dni") {
			continue
		}

		if len(record) < 2 {
			rowErrors = append(rowErrors, fmt.Sprintf("línea %d: faltan columnas", line))
			continue
		}

		dni := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		lastname := ""
		email := ""
		if len(record) > 2 {
			lastname = strings.TrimSpace(record[2])
		}
		if len(record) > 3 {
			email = strings.TrimSpace(record[3])
		}

		if dni == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("línea %d: DNI vacío", line))
			continue
		}

		var existing models.User
		if err := db.Where("dni = ?", dni).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		password, err := utils.GeneratePassword(12)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("línea %d: %v", line, err))
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("línea %d: %v", line, err))
			continue
		}

		user := models.User{
			DNI:      dni,
			Name:     name,
			Lastname: lastname,
			Password: string(hashed),
			Role:     models.RoleUser,
		}
		if email != "" {
			user.Email = &email
		}

		if err := db.Create(&user).Error; err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("línea %d: %v", line, err))
			continue
		}
		created++

		if email != "" {
			if err := services.SendCredentials(email, name, dni, password); err != nil {
				log.Printf("credentials mail to %s failed: %v", email, err)
			}
		}
	}

	return c.JSON(fiber.Map{
		"message": "Importación finalizada",
		"created": created,
		"skipped": skipped,
		"errors":  rowErrors,
	})
}

func parseUserID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
