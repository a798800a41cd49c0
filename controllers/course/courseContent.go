package courseController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	courseValidator "academy/validators/course"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ModuleWithLessons bundles a module with its ordered lessons
type ModuleWithLessons struct {
	models.Module
	Lessons []models.Lesson `json:"lessons"`
}

// paidEnrollment reports whether the user holds a PAID enrollment for the
// course. Content routes are gated on it.
func paidEnrollment(db *gorm.DB, userID, courseID uint) bool {
	var enrollment models.Enrollment
	err := db.Where("user_id = ? AND course_id = ? AND payment_status = ? AND is_deleted = ?",
		userID, courseID, models.PaymentPaid, false).First(&enrollment).Error
	return err == nil
}

// getOrCreateProgress lazily creates a zeroed progress record on first read.
// The row is read FOR UPDATE so callers inside a transaction hold it until
// commit.
func getOrCreateProgress(db *gorm.DB, userID, courseID uint) (*models.Progress, error) {
	var progress models.Progress
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	progress = models.Progress{
		UserID:   userID,
		CourseID: courseID,
	}
	progress.SetCompletedList([]uint{})

	if err := db.Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func GetCourseContent(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	courseID := c.Locals("courseID").(uint)

	db := database.Database.Db

	if !paidEnrollment(db, userId, courseID) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Access denied")
	}

	var modules []models.Module
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("month_number asc").Find(&modules).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch course content")
	}

	result := make([]ModuleWithLessons, 0, len(modules))
	for _, module := range modules {
		var lessons []models.Lesson
		if err := db.Where("module_id = ? AND is_deleted = ?", module.ID, false).
			Order("week asc, id asc").Find(&lessons).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch course content")
		}
		result = append(result, ModuleWithLessons{Module: module, Lessons: lessons})
	}

	progress, err := getOrCreateProgress(db, userId, courseID)
	if err != nil {
		log.Printf("Error loading progress for user %d course %d: %v", userId, courseID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch course content")
	}

	return c.JSON(fiber.Map{
		"modules":  result,
		"progress": progress,
	})
}

func MarkLessonComplete(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	reqData := c.Locals("validatedMarkComplete").(*courseValidator.MarkCompleteRequest)

	db := database.Database.Db

	if !paidEnrollment(db, userId, reqData.CourseID) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Access denied")
	}

	var progress *models.Progress

	// The progress row is locked for the whole transaction, so concurrent
	// completes serialize instead of overwriting each other's lesson set
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		progress, err = getOrCreateProgress(tx, userId, reqData.CourseID)
		if err != nil {
			return err
		}

		completed := progress.CompletedList()
		found := false
		for _, id := range completed {
			if id == reqData.LessonID {
				found = true
				break
			}
		}
		if !found {
			completed = append(completed, reqData.LessonID)
		}
		progress.SetCompletedList(completed)
		progress.LastAccessedLesson = reqData.LessonID

		var totalLessons int64
		if err := tx.Model(&models.Lesson{}).
			Where("course_id = ? AND is_deleted = ?", reqData.CourseID, false).
			Count(&totalLessons).Error; err != nil {
			return err
		}

		// A course with no lessons stays at 0%
		if totalLessons == 0 {
			progress.ProgressPercentage = 0
		} else {
			progress.ProgressPercentage = int(math.Round(float64(len(completed)) / float64(totalLessons) * 100))
		}

		return tx.Save(progress).Error
	})

	if err != nil {
		log.Printf("Error updating progress: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update progress")
	}

	return c.JSON(progress)
}

// GetTodayLiveLesson returns today's scheduled LIVE lesson, if any
func GetTodayLiveLesson(c *fiber.Ctx) error {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var lesson models.Lesson
	err := database.Database.Db.Where(
		"type = ? AND scheduled_at >= ? AND scheduled_at < ? AND is_deleted = ?",
		models.LessonTypeLive, startOfDay, endOfDay, false).First(&lesson).Error
	if err != nil {
		return c.JSON(nil)
	}

	return c.JSON(lesson)
}
