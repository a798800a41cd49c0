package database

import (
	"academy/models"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectTestDb opens a fresh in-memory SQLite database and installs it as
// the global instance. Used by package tests only.
func ConnectTestDb() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to open test database: %v", err)
	}

	// Each call starts from an empty schema
	db.Migrator().DropTable(
		&models.User{},
		&models.PendingRegistration{},
		&models.Course{},
		&models.Module{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.Progress{},
		&models.Announcement{},
		&models.Notification{},
		&models.LiveClass{},
	)

	runMigrations(db)

	Database = DbInstance{Db: db}
}
