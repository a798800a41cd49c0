package courseController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	courseValidator "academy/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       *reqData.Price,
		Duration:    reqData.Duration,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	return c.JSON(courses)
}
