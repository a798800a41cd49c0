package middleware

import (
	"academy/config"
	"academy/database"
	"academy/models"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a session token embedding the user id and role
func GenerateJWT(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(), // expiry 7d
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware checks for a valid bearer token and loads the acting user
// (password excluded) into the request context
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, no token")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, no token")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, token failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized, token failed")
	}

	userID := uint(claims["id"].(float64)) // JWT numbers decode as float64

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "User not found")
	}

	user.Password = ""
	c.Locals("userId", user.ID)
	c.Locals("user", user)

	return c.Next()
}

// AdminMiddleware rejects callers whose role is not admin. Must run after
// JWTMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	if !strings.EqualFold(user.Role, models.RoleAdmin) {
		return ErrorResponse(c, fiber.StatusForbidden, "Admin access only")
	}

	return c.Next()
}

// ErrorResponse writes the API's uniform error body
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}

// ValidationErrorResponse writes per-field validation failures
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errors,
	})
}
