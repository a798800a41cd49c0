package courseController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	courseValidator "academy/validators/course"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

func CreateModule(c *fiber.Ctx) error {
	reqData := c.Locals("validatedModule").(*courseValidator.CreateModuleRequest)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	module := models.Module{
		CourseID:    reqData.CourseID,
		Title:       reqData.Title,
		MonthNumber: reqData.MonthNumber,
		Description: reqData.Description,
	}

	if err := db.Create(&module).Error; err != nil {
		log.Printf("Error creating module: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create module")
	}

	return c.Status(fiber.StatusCreated).JSON(module)
}

func CreateLesson(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLesson").(*courseValidator.CreateLessonRequest)

	db := database.Database.Db

	var module models.Module
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found")
	}

	lesson := models.Lesson{
		CourseID:        reqData.CourseID,
		ModuleID:        reqData.ModuleID,
		Title:           reqData.Title,
		Week:            reqData.Week,
		DurationMinutes: reqData.DurationMinutes,
		LiveLink:        reqData.LiveLink,
	}

	if reqData.Type != "" {
		lesson.Type = reqData.Type
	}

	if reqData.ScheduledAt != "" {
		scheduledAt, err := time.Parse(time.RFC3339, reqData.ScheduledAt)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "scheduledAt must be RFC3339")
		}
		lesson.ScheduledAt = &scheduledAt
	}

	if err := db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}

	return c.Status(fiber.StatusCreated).JSON(lesson)
}
