package enrollmentValidator

import (
	"academy/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateEnrollmentRequest struct {
	CourseID     uint     `json:"courseId"`
	Education    string   `json:"education"`
	Experience   string   `json:"experience"`
	CurrentRole  string   `json:"currentRole"`
	Skills       []string `json:"skills"`
	Expectations string   `json:"expectations"`
}

func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEnrollmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.CourseID == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required")
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}
