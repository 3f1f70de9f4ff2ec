// middleware/auth.go
package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/gcroch/TRP-2024/database"
	"github.com/gcroch/TRP-2024/models"
)

func AuthMiddleware(c *fiber.Ctx) error {
	claims, ferr := parseBearerToken(c)
	if ferr != nil {
		return c.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("dni", claims["dni"])
	c.Locals("role", claims["role"])

	// Update user's last activity
	updateUserActivity(claims["user_id"])

	return c.Next()
}

func AdminAuthMiddleware(c *fiber.Ctx) error {
	claims, ferr := parseBearerToken(c)
	if ferr != nil {
		return c.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}

	role, ok := claims["role"].(string)
	if !ok || role != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied. Admin privileges required."})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("dni", claims["dni"])
	c.Locals("role", role)

	return c.Next()
}

func parseBearerToken(c *fiber.Ctx) (jwt.MapClaims, *fiber.Error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.NewError(401, "Missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fiber.NewError(401, "Invalid authorization header format")
	}

	tokenString := parts[1]
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "taller-secret-change-in-production"
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fiber.NewError(401, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(401, "Invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, fiber.NewError(401, "Token expired")
	}

	return claims, nil
}

func GetUserID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	if id, ok := userID.(float64); ok {
		return uint(id), nil
	}

	if id, ok := userID.(uint); ok {
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid user ID format")
}

func GetDNI(c *fiber.Ctx) (string, error) {
	dni := c.Locals("dni")
	if dni == nil {
		return "", fiber.NewError(401, "User not authenticated")
	}

	if v, ok := dni.(string); ok {
		return v, nil
	}

	return "", fiber.NewError(401, "Invalid DNI format")
}

// updateUserActivity updates the user's last login timestamp
func updateUserActivity(userID interface{}) {
	if userID == nil {
		return
	}

	db := database.GetDB()
	if db == nil {
		return
	}

	var id uint
	switch v := userID.(type) {
	case float64:
		id = uint(v)
	case uint:
		id = v
	default:
		return
	}

	db.Model(&models.User{}).Where("id = ?", id).Update("last_login", time.Now())
}
