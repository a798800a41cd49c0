package dashboardController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

func StudentDashboard(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ? AND is_deleted = ?", userId, false).
		Preload("Course").Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Dashboard error")
	}

	courses := make([]fiber.Map, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var progress models.Progress
		percentage := 0
		if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
			userId, enrollment.CourseID, false).First(&progress).Error; err == nil {
			percentage = progress.ProgressPercentage
		}

		courses = append(courses, fiber.Map{
			"id":       enrollment.CourseID,
			"title":    enrollment.Course.Title,
			"duration": enrollment.Course.Duration,
			"progress": percentage,
		})
	}

	// Today's live lesson, if one is scheduled
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var todayLive fiber.Map
	var lesson models.Lesson
	if err := db.Where("type = ? AND scheduled_at >= ? AND scheduled_at < ? AND is_deleted = ?",
		models.LessonTypeLive, startOfDay, startOfDay.Add(24*time.Hour), false).
		First(&lesson).Error; err == nil {
		todayLive = fiber.Map{
			"title": lesson.Title,
			"time":  lesson.ScheduledAt,
			"link":  lesson.LiveLink,
		}
	}

	var announcements []models.Announcement
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("created_at desc").Limit(3).Find(&announcements).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Dashboard error")
	}

	return c.JSON(fiber.Map{
		"courses":       courses,
		"todayLive":     todayLive,
		"announcements": announcements,
	})
}
