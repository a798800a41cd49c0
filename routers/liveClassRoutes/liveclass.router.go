package liveClassRoutes

import (
	liveClassControllers "academy/controllers/liveclass"
	"academy/middleware"
	liveClassValidators "academy/validators/liveclass"

	"github.com/gofiber/fiber/v2"
)

func SetupLiveClassRoutes(app *fiber.App) {
	liveClassGroup := app.Group("/live-classes")

	liveClassGroup.Post("/", middleware.JWTMiddleware, middleware.AdminMiddleware, liveClassValidators.CreateLiveClass(), liveClassControllers.CreateLiveClass)
	liveClassGroup.Get("/my/:courseId", middleware.JWTMiddleware, liveClassControllers.GetMyLiveClasses)
}
