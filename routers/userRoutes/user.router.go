package userRoutes

import (
	dashboardControllers "academy/controllers/dashboard"
	userControllers "academy/controllers/user"
	"academy/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	profileGroup := app.Group("/profile")

	profileGroup.Get("/me", middleware.JWTMiddleware, userControllers.GetProfile)
	profileGroup.Put("/update", middleware.JWTMiddleware, userControllers.UpdateProfile)

	dashboardGroup := app.Group("/dashboard")

	dashboardGroup.Get("/student", middleware.JWTMiddleware, dashboardControllers.StudentDashboard)
}
