package models

import "gorm.io/gorm"

type Module struct {
	gorm.Model
	CourseID    uint   `gorm:"not null;index" json:"courseId"`
	Title       string `gorm:"not null" json:"title"`
	MonthNumber int    `gorm:"not null" json:"monthNumber"` // 1 to 6
	Description string `json:"description"`
	IsUnlocked  bool   `gorm:"default:false" json:"isUnlocked"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}
