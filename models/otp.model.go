package models

import (
	"time"

	"gorm.io/gorm"
)

// PendingRegistration stages a signup until its OTP is confirmed. The
// password stays plain here and is hashed when the user record is created.
type PendingRegistration struct {
	gorm.Model
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:100;index;not null" json:"email"`
	Mobile    string    `gorm:"size:15" json:"mobile,omitempty"`
	Password  string    `gorm:"not null" json:"-"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	IsDeleted bool      `gorm:"default:false" json:"-"`
}
