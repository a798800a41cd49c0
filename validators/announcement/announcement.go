package announcementValidator

import (
	"academy/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CreateAnnouncementRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	CourseID *uint  `json:"courseId"`
}

func CreateAnnouncement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAnnouncementRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(reqData.Title) == "" || strings.TrimSpace(reqData.Message) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Title and message required")
		}

		c.Locals("validatedAnnouncement", reqData)
		return c.Next()
	}
}
