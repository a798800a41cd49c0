package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EnrollmentPending = "PENDING_PAYMENT"
	EnrollmentActive  = "ACTIVE"

	PaymentUnpaid = "UNPAID"
	PaymentPaid   = "PAID"
)

type Enrollment struct {
	gorm.Model
	UserID   uint `gorm:"not null;index:idx_user_course" json:"userId"`
	CourseID uint `gorm:"not null;index:idx_user_course" json:"courseId"`

	// Intake answers captured at enrollment time
	Education    string         `json:"education"`
	Experience   string         `json:"experience"`
	CurrentRole  string         `json:"currentRole"`
	Skills       datatypes.JSON `json:"skills"`
	Expectations string         `json:"expectations"`

	Status        string `gorm:"default:'PENDING_PAYMENT'" json:"status"`        // PENDING_PAYMENT, ACTIVE
	PaymentStatus string `gorm:"default:'UNPAID'" json:"paymentStatus"`          // UNPAID, PAID
	PaymentID     string `gorm:"default:''" json:"paymentId,omitempty"`
	IsDeleted     bool   `gorm:"default:false" json:"-"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
