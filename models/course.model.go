package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
	Duration    string  `json:"duration"`
	IsDeleted   bool    `gorm:"default:false" json:"-"`
}
