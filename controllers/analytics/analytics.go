package analyticsController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"

	"github.com/gofiber/fiber/v2"
)

func Overview(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalStudents int64
	if err := db.Model(&models.User{}).
		Where("role = ? AND is_deleted = ?", models.RoleStudent, false).
		Count(&totalStudents).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load analytics")
	}

	var totalCourses int64
	if err := db.Model(&models.Course{}).
		Where("is_deleted = ?", false).Count(&totalCourses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load analytics")
	}

	var paidEnrollments []models.Enrollment
	if err := db.Where("payment_status = ? AND is_deleted = ?", models.PaymentPaid, false).
		Preload("Course").Find(&paidEnrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load analytics")
	}

	totalRevenue := 0.0
	for _, enrollment := range paidEnrollments {
		totalRevenue += enrollment.Course.Price
	}

	return c.JSON(fiber.Map{
		"totalStudents":   totalStudents,
		"totalCourses":    totalCourses,
		"paidEnrollments": len(paidEnrollments),
		"totalRevenue":    totalRevenue,
	})
}

func RecentPayments(c *fiber.Ctx) error {
	var payments []models.Enrollment
	if err := database.Database.Db.Where("payment_status = ? AND is_deleted = ?", models.PaymentPaid, false).
		Preload("User").Preload("Course").
		Order("updated_at desc").Limit(10).Find(&payments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load payments")
	}

	return c.JSON(payments)
}
