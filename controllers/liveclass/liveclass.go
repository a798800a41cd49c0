package liveClassController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	liveClassValidator "academy/validators/liveclass"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func CreateLiveClass(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLiveClass").(*liveClassValidator.CreateLiveClassRequest)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	liveClass := models.LiveClass{
		CourseID:  reqData.CourseID,
		Title:     reqData.Title,
		StartTime: reqData.StartTime,
		EndTime:   reqData.EndTime,
		LiveLink:  reqData.LiveLink,
	}

	if err := db.Create(&liveClass).Error; err != nil {
		log.Printf("Error creating live class: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create live class")
	}

	return c.Status(fiber.StatusCreated).JSON(liveClass)
}

func GetMyLiveClasses(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	courseID, err := strconv.Atoi(c.Params("courseId"))
	if err != nil || courseID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID")
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND payment_status = ? AND is_deleted = ?",
		userId, courseID, models.PaymentPaid, false).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Access denied")
	}

	var classes []models.LiveClass
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("start_time asc").Find(&classes).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch live classes")
	}

	return c.JSON(classes)
}
