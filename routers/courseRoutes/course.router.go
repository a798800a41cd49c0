package courseRoutes

import (
	courseControllers "academy/controllers/course"
	"academy/middleware"
	courseValidators "academy/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidators.CreateCourse(), courseControllers.CreateCourse)
	courseGroup.Get("/", courseControllers.GetAllCourses)

	// Gated course content and progress
	contentGroup := app.Group("/course-content")
	contentGroup.Get("/today/live", middleware.JWTMiddleware, courseControllers.GetTodayLiveLesson)
	contentGroup.Get("/:courseId", middleware.JWTMiddleware, courseValidators.CourseIDParam(), courseControllers.GetCourseContent)
	contentGroup.Post("/complete", middleware.JWTMiddleware, courseValidators.MarkComplete(), courseControllers.MarkLessonComplete)
}
