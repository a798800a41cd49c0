package authRoutes

import (
	authControllers "academy/controllers/auth"
	"academy/middleware"
	authValidators "academy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/send-otp", authValidators.SendOTP(), authControllers.SendOTP)
	authGroup.Post("/verify-otp", authValidators.VerifyOTP(), authControllers.VerifyOTP)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/forgot-password", authValidators.ForgotPassword(), authControllers.ForgotPassword)
	authGroup.Post("/reset-password/:token", authValidators.ResetPassword(), authControllers.ResetPassword)
	authGroup.Put("/change-password", middleware.JWTMiddleware, authValidators.ChangePassword(), authControllers.ChangePassword)
}
