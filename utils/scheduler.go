package utils

import (
	"academy/database"
	"academy/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredRegistrations removes staged signups whose OTP window closed
func purgeExpiredRegistrations() {
	db := database.Database.Db

	result := db.Where("expires_at < ?", time.Now()).Delete(&models.PendingRegistration{})
	if result.Error != nil {
		logScheduler("Error purging expired registrations: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged expired pending registrations")
	}
}

// updateLiveLessonStatus moves LIVE-type lessons through
// UPCOMING -> LIVE -> COMPLETED based on their schedule
func updateLiveLessonStatus() {
	db := database.Database.Db
	now := time.Now()

	var lessons []models.Lesson
	if err := db.Where("type = ? AND status <> ? AND is_deleted = ? AND scheduled_at IS NOT NULL",
		models.LessonTypeLive, models.LessonStatusCompleted, false).Find(&lessons).Error; err != nil {
		logScheduler("Error fetching live lessons: " + err.Error())
		return
	}

	for _, lesson := range lessons {
		endsAt := lesson.ScheduledAt.Add(time.Duration(lesson.DurationMinutes) * time.Minute)

		switch {
		case lesson.Status == models.LessonStatusUpcoming && !now.Before(*lesson.ScheduledAt) && now.Before(endsAt):
			db.Model(&lesson).Update("status", models.LessonStatusLive)
			logScheduler("Lesson " + lesson.Title + " is now LIVE")
		case !now.Before(endsAt):
			db.Model(&lesson).Update("status", models.LessonStatusCompleted)
			logScheduler("Lesson " + lesson.Title + " marked COMPLETED")
		}
	}
}

// InitSchedulers starts the background cron jobs
func InitSchedulers() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@every 10m", purgeExpiredRegistrations); err != nil {
		log.Fatalf("Failed to schedule registration purge: %v", err)
	}
	if _, err := c.AddFunc("@every 1m", updateLiveLessonStatus); err != nil {
		log.Fatalf("Failed to schedule lesson status updates: %v", err)
	}

	c.Start()
	logScheduler("Background schedulers started")
	return c
}
