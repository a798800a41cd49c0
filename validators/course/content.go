package courseValidator

import (
	"academy/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseIDParam validates the :courseId path segment
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		if courseIDStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required")
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID")
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

type MarkCompleteRequest struct {
	CourseID uint `json:"courseId"`
	LessonID uint `json:"lessonId"`
}

func MarkComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MarkCompleteRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.LessonID == 0 {
			errors["lessonId"] = "Lesson ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMarkComplete", reqData)
		return c.Next()
	}
}
