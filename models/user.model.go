package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Name                string     `gorm:"default:''" json:"name"`
	Email               string     `gorm:"unique;not null" json:"email"`
	Mobile              string     `gorm:"default:''" json:"mobile"`
	Password            string     `gorm:"not null" json:"-"`
	Role                string     `gorm:"default:'student'" json:"role"` // student, admin
	ResetPasswordToken  string     `gorm:"default:''" json:"-"`
	ResetPasswordExpire *time.Time `json:"-"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}
