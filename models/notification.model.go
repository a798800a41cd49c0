package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	UserID         uint `gorm:"not null;index" json:"userId"`
	AnnouncementID uint `gorm:"not null" json:"announcementId"`
	IsRead         bool `gorm:"default:false" json:"isRead"`
	IsDeleted      bool `gorm:"default:false" json:"-"`

	Announcement Announcement `gorm:"foreignKey:AnnouncementID" json:"announcement,omitempty"`
}
