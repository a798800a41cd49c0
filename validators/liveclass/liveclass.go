package liveClassValidator

import (
	"academy/middleware"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type CreateLiveClassRequest struct {
	CourseID  uint      `json:"courseId"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	LiveLink  string    `json:"liveLink"`
}

func CreateLiveClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLiveClassRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.StartTime.IsZero() {
			errors["startTime"] = "Start time is required!"
		}
		if reqData.EndTime.IsZero() {
			errors["endTime"] = "End time is required!"
		} else if !reqData.EndTime.After(reqData.StartTime) {
			errors["endTime"] = "End time must be after start time!"
		}
		if strings.TrimSpace(reqData.LiveLink) == "" {
			errors["liveLink"] = "Live link is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLiveClass", reqData)
		return c.Next()
	}
}
