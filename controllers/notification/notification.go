package notificationController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

func GetNotifications(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	var notifications []models.Notification
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userId, false).
		Preload("Announcement").
		Order("created_at desc").Find(&notifications).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return c.JSON(notifications)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	notificationID := c.Params("id")

	db := database.Database.Db

	var notification models.Notification
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", notificationID, userId, false).
		First(&notification).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Notification not found")
	}

	if err := db.Model(&notification).Update("is_read", true).Error; err != nil {
		log.Printf("Error marking notification read: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to mark notification read")
	}

	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}
