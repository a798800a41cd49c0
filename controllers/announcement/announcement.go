package announcementController

import (
	"academy/database"
	"academy/middleware"
	"academy/models"
	announcementValidator "academy/validators/announcement"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// fanOutNotifications writes one inbox row per recipient. Global
// announcements reach every student; course-scoped ones reach its
// enrolled users. Failures are logged, never surfaced.
func fanOutNotifications(announcement models.Announcement) {
	db := database.Database.Db

	var userIDs []uint
	var err error

	if announcement.CourseID == nil {
		err = db.Model(&models.User{}).
			Where("role = ? AND is_deleted = ?", models.RoleStudent, false).
			Pluck("id", &userIDs).Error
	} else {
		err = db.Model(&models.Enrollment{}).
			Where("course_id = ? AND is_deleted = ?", *announcement.CourseID, false).
			Pluck("user_id", &userIDs).Error
	}

	if err != nil {
		log.Printf("Error resolving notification recipients for announcement %d: %v", announcement.ID, err)
		return
	}

	for _, userID := range userIDs {
		notification := models.Notification{
			UserID:         userID,
			AnnouncementID: announcement.ID,
		}
		if err := db.Create(&notification).Error; err != nil {
			log.Printf("Error creating notification for user %d: %v", userID, err)
		}
	}
}

func CreateAnnouncement(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	reqData := c.Locals("validatedAnnouncement").(*announcementValidator.CreateAnnouncementRequest)

	announcement := models.Announcement{
		Title:     reqData.Title,
		Message:   reqData.Message,
		CourseID:  reqData.CourseID,
		CreatedBy: user.ID,
		IsActive:  true,
	}
	announcement.SetReaders([]uint{})

	if err := database.Database.Db.Create(&announcement).Error; err != nil {
		log.Printf("Error creating announcement: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}

	go fanOutNotifications(announcement)

	return c.Status(fiber.StatusCreated).JSON(announcement)
}

func GetMyAnnouncements(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	db := database.Database.Db

	var courseIDs []uint
	if err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Pluck("course_id", &courseIDs).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	query := db.Where("is_active = ? AND is_deleted = ?", true, false)
	if len(courseIDs) > 0 {
		query = query.Where("course_id IS NULL OR course_id IN ?", courseIDs)
	} else {
		query = query.Where("course_id IS NULL")
	}

	var announcements []models.Announcement
	if err := query.Order("created_at desc").Find(&announcements).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	return c.JSON(announcements)
}

func MarkAnnouncementRead(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Not authorized")
	}

	announcementID := c.Params("id")

	db := database.Database.Db

	// The announcement row is read FOR UPDATE and held until commit, so
	// concurrent readers serialize instead of overwriting each other's
	// reader set
	err := db.Transaction(func(tx *gorm.DB) error {
		var announcement models.Announcement
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_deleted = ?", announcementID, false).First(&announcement).Error; err != nil {
			return err
		}

		readers := announcement.Readers()
		for _, id := range readers {
			if id == userId {
				return nil // already read, no-op
			}
		}
		readers = append(readers, userId)
		announcement.SetReaders(readers)

		return tx.Model(&announcement).Update("read_by", announcement.ReadBy).Error
	})

	if err == gorm.ErrRecordNotFound {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Announcement not found")
	}
	if err != nil {
		log.Printf("Error marking announcement read: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to mark announcement read")
	}

	return c.JSON(fiber.Map{"success": true})
}
