package enrollmentRoutes

import (
	enrollmentControllers "academy/controllers/enrollment"
	"academy/middleware"
	enrollmentValidators "academy/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollments")

	enrollmentGroup.Post("/", middleware.JWTMiddleware, enrollmentValidators.CreateEnrollment(), enrollmentControllers.CreateEnrollment)
	enrollmentGroup.Get("/my", middleware.JWTMiddleware, enrollmentControllers.GetMyEnrollments)
	enrollmentGroup.Get("/", middleware.JWTMiddleware, middleware.AdminMiddleware, enrollmentControllers.GetAllEnrollments)
}
