package enrollmentController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	enrollmentValidator "academy/validators/enrollment"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
)

func CreateEnrollment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	reqData := c.Locals("validatedEnrollment").(*enrollmentValidator.CreateEnrollmentRequest)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	// One enrollment per (user, course) pair
	var existing models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userId, reqData.CourseID, false).
		First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":       "Already enrolled in this course",
			"enrollmentId":  existing.ID,
			"paymentStatus": existing.PaymentStatus,
		})
	}

	skills, _ := json.Marshal(reqData.Skills)

	enrollment := models.Enrollment{
		UserID:        userId,
		CourseID:      reqData.CourseID,
		Education:     reqData.Education,
		Experience:    reqData.Experience,
		CurrentRole:   reqData.CurrentRole,
		Skills:        skills,
		Expectations:  reqData.Expectations,
		Status:        models.EnrollmentPending,
		PaymentStatus: models.PaymentUnpaid,
	}

	if err := db.Create(&enrollment).Error; err != nil {
		log.Printf("Error creating enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to enroll in course")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"enrollmentId": enrollment.ID,
	})
}

func GetMyEnrollments(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userId, false).
		Preload("Course").Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	return c.JSON(enrollments)
}

func GetAllEnrollments(c *fiber.Ctx) error {
	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Preload("User").Preload("Course").
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	return c.JSON(enrollments)
}
