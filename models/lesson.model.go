package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	LessonTypeLive     = "LIVE"
	LessonTypeRecorded = "RECORDED"
	LessonTypeText     = "TEXT"

	LessonStatusUpcoming  = "UPCOMING"
	LessonStatusLive      = "LIVE"
	LessonStatusCompleted = "COMPLETED"
)

type Lesson struct {
	gorm.Model
	CourseID        uint       `gorm:"not null;index" json:"courseId"`
	ModuleID        uint       `gorm:"not null;index" json:"moduleId"`
	Title           string     `gorm:"not null" json:"title"`
	Type            string     `gorm:"default:'LIVE'" json:"type"` // LIVE, RECORDED, TEXT
	Week            int        `json:"week"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	DurationMinutes int        `json:"durationMinutes"`
	LiveLink        string     `json:"liveLink"`
	Status          string     `gorm:"default:'UPCOMING'" json:"status"` // UPCOMING, LIVE, COMPLETED
	IsDeleted       bool       `gorm:"default:false" json:"-"`
}
