package adminRoutes

import (
	analyticsControllers "academy/controllers/analytics"
	courseControllers "academy/controllers/course"
	"academy/middleware"
	courseValidators "academy/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	contentGroup := app.Group("/admin/content", middleware.JWTMiddleware, middleware.AdminMiddleware)

	contentGroup.Post("/module", courseValidators.CreateModule(), courseControllers.CreateModule)
	contentGroup.Post("/lesson", courseValidators.CreateLesson(), courseControllers.CreateLesson)

	analyticsGroup := app.Group("/admin/analytics", middleware.JWTMiddleware, middleware.AdminMiddleware)

	analyticsGroup.Get("/overview", analyticsControllers.Overview)
	analyticsGroup.Get("/payments", analyticsControllers.RecentPayments)
}
