// handlers/auth.go
package handlers

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/middleware"
	"github.com/gcroch/TRP-2024/models"
	"github.com/gcroch/TRP-2024/services"
	"github.com/gcroch/TRP-2024/utils"
)

type LoginRequest struct {
	DNI      string `json:"DNI"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	DNI      string `json:"DNI"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	Password *string `json:"password"`
}

// Login authenticates a user by DNI and password
// POST /login
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.DNI == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "DNI and password required"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.Where("dni = ?", req.DNI).First(&user).Error; err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Credenciales inválidas"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Credenciales inválidas"})
	}

	// Update last login
	db.Model(&user).Update("last_login", time.Now())

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{"access_token": token})
}

// Register creates a new user with a generated password and mails the
// credentials. Admin only.
// POST /register
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.DNI == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Faltan datos"})
	}

	db := database.GetDB()

	var existing models.User
	if err := db.Where("dni = ?", req.DNI).First(&existing).Error; err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "El usuario ya existe"})
	}

	password, err := utils.GeneratePassword(12)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate password"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := models.User{
		DNI:      req.DNI,
		Name:     req.Name,
		Lastname: req.Lastname,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	if err := db.Create(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create account"})
	}

	if req.Email != "" {
		if err := services.SendCredentials(req.Email, req.Name, req.DNI, password); err != nil {
			// The account exists either way; the admin can reset manually.
			log.Printf("credentials mail to %s failed: %v", req.Email, err)
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Usuario registrado exitosamente. Se ha enviado un correo con la contraseña.",
	})
}

// GetProfile returns the authenticated user's profile
// GET /profile
func GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}

	email := ""
	if user.Email != nil {
		email = *user.Email
	}

	return c.JSON(fiber.Map{
		"DNI":      user.DNI,
		"name":     user.Name,
		"lastname": user.Lastname,
		"email":    email,
		"role":     user.Role,
		"exp":      user.XP,
	})
}

// UpdateProfile updates name, lastname and/or password of the caller
// PUT /profile
func UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Lastname != nil {
		updates["lastname"] = *req.Lastname
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 6 characters"})
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
		}
		updates["password"] = string(hashed)
	}

	if len(updates) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No se han enviado campos para actualizar"})
	}

	db := database.GetDB()
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}

	return c.JSON(fiber.Map{"message": "Usuario actualizado exitosamente"})
}

func generateToken(user models.User) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "taller-secret-change-in-production"
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"dni":     user.DNI,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 720).Unix(), // 30 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
