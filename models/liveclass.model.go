package models

import (
	"time"

	"gorm.io/gorm"
)

type LiveClass struct {
	gorm.Model
	CourseID  uint      `gorm:"not null;index" json:"courseId"`
	Title     string    `gorm:"not null" json:"title"`
	StartTime time.Time `gorm:"not null" json:"startTime"`
	EndTime   time.Time `gorm:"not null" json:"endTime"`
	LiveLink  string    `gorm:"not null" json:"liveLink"`
	IsDeleted bool      `gorm:"default:false" json:"-"`
}
