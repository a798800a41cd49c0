package main

import (
	"academy/config"
	"academy/database"
	adminRoutes "academy/routers/adminRoutes"
	announcementRoutes "academy/routers/announcementRoutes"
	authRoutes "academy/routers/authRoutes"
	courseRoutes "academy/routers/courseRoutes"
	enrollmentRoutes "academy/routers/enrollmentRoutes"
	liveClassRoutes "academy/routers/liveClassRoutes"
	paymentRoutes "academy/routers/paymentRoutes"
	userRoutes "academy/routers/userRoutes"
	"academy/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	utils.InitSchedulers()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	announcementRoutes.SetupAnnouncementRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	liveClassRoutes.SetupLiveClassRoutes(app)
	userRoutes.SetupUserRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
