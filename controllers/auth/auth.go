package authController

import (
	"academy/config"
	"academy/database"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	authValidator "academy/validators/auth"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// publicUser strips a user record down to the fields the API exposes
func publicUser(user models.User) fiber.Map {
	return fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

func Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterRequest)

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "User already exists with this email")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request")
	}

	// Role is never taken from the request
	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Password: string(hashedPassword),
		Role:     models.RoleStudent,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Role)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  publicUser(newUser),
	})
}

func SendOTP(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterRequest)

	db := database.Database.Db

	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "User already exists with this email")
	}

	otp := utils.GenerateOTP()

	// Only one staged registration may be live per email
	if err := db.Where("email = ?", reqData.Email).Delete(&models.PendingRegistration{}).Error; err != nil {
		log.Printf("Error clearing stale pending registrations: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send OTP")
	}

	pending := models.PendingRegistration{
		Name:      reqData.Name,
		Email:     reqData.Email,
		Mobile:    reqData.Mobile,
		Password:  reqData.Password,
		Code:      otp,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	if err := db.Create(&pending).Error; err != nil {
		log.Printf("Error staging registration: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send OTP")
	}

	// Delivery failure surfaces to the caller; the client retries send-otp
	if err := utils.SendOTPEmail(otp, reqData.Email); err != nil {
		log.Printf("Error sending OTP email to %s: %v", reqData.Email, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send OTP")
	}

	return c.JSON(fiber.Map{"message": "OTP sent successfully"})
}

func VerifyOTP(c *fiber.Ctx) error {
	reqData := c.Locals("validatedVerifyOTP").(*struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	})

	db := database.Database.Db

	var pending models.PendingRegistration
	if err := db.Where("email = ?", reqData.Email).Order("created_at desc").First(&pending).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "OTP not found")
	}

	if pending.Code != reqData.OTP {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid OTP")
	}

	if pending.ExpiresAt.Before(time.Now()) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "OTP expired")
	}

	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "User already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(pending.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing staged password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Registration failed")
	}

	user := models.User{
		Name:     pending.Name,
		Email:    pending.Email,
		Mobile:   pending.Mobile,
		Password: string(hashedPassword),
		Role:     models.RoleStudent,
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error creating user from staged registration: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Registration failed")
	}

	if err := db.Where("email = ?", reqData.Email).Delete(&models.PendingRegistration{}).Error; err != nil {
		log.Printf("Error deleting consumed registration for %s: %v", reqData.Email, err)
	}

	return c.JSON(fiber.Map{"message": "User registered successfully"})
}

func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	var user models.User
	// Same message for a bad email and a bad password
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email or password")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  publicUser(user),
	})
}

func ForgotPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedForgotPassword").(*struct {
		Email string `json:"email"`
	})

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found with this email")
	}

	token, hashedToken, err := utils.GenerateResetToken()
	if err != nil {
		log.Printf("Error generating reset token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request")
	}

	expiresAt := time.Now().Add(15 * time.Minute)
	user.ResetPasswordToken = hashedToken
	user.ResetPasswordExpire = &expiresAt

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving reset token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request")
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", config.AppConfig.FrontendURL, token)

	if err := utils.SendPasswordResetEmail(user.Email, resetURL); err != nil {
		log.Printf("Error sending reset email to %s: %v", user.Email, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send reset email")
	}

	return c.JSON(fiber.Map{"message": "Reset link sent to your email"})
}

func ResetPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedResetPassword").(*struct {
		Password string `json:"password"`
	})

	hashedToken := utils.HashToken(c.Params("token"))

	db := database.Database.Db

	var user models.User
	if err := db.Where("reset_password_token = ? AND reset_password_expire > ? AND is_deleted = ?",
		hashedToken, time.Now(), false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user.Password = string(hashedPassword)
	user.ResetPasswordToken = ""
	user.ResetPasswordExpire = nil

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error resetting password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return c.JSON(fiber.Map{"message": "Password reset successful"})
}

func ChangePassword(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	reqData := c.Locals("validatedChangePassword").(*struct {
		Password string `json:"password"`
	})

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "User not found")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&user).Update("password", string(hashedPassword)).Error
	})
	if err != nil {
		log.Printf("Error updating user password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}
