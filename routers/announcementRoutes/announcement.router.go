package announcementRoutes

import (
	announcementControllers "academy/controllers/announcement"
	notificationControllers "academy/controllers/notification"
	"academy/middleware"
	announcementValidators "academy/validators/announcement"

	"github.com/gofiber/fiber/v2"
)

func SetupAnnouncementRoutes(app *fiber.App) {
	announcementGroup := app.Group("/announcements")

	announcementGroup.Post("/", middleware.JWTMiddleware, middleware.AdminMiddleware, announcementValidators.CreateAnnouncement(), announcementControllers.CreateAnnouncement)
	announcementGroup.Get("/my", middleware.JWTMiddleware, announcementControllers.GetMyAnnouncements)
	announcementGroup.Put("/read/:id", middleware.JWTMiddleware, announcementControllers.MarkAnnouncementRead)

	notificationGroup := app.Group("/notifications")

	notificationGroup.Get("/", middleware.JWTMiddleware, notificationControllers.GetNotifications)
	notificationGroup.Post("/read/:id", middleware.JWTMiddleware, notificationControllers.MarkNotificationRead)
}
