package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Announcement struct {
	gorm.Model
	Title     string         `gorm:"not null" json:"title"`
	Message   string         `gorm:"not null" json:"message"`
	CourseID  *uint          `gorm:"index" json:"courseId"` // nil means platform-wide
	CreatedBy uint           `gorm:"not null" json:"createdBy"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	ReadBy    datatypes.JSON `json:"readBy"`
	IsDeleted bool           `gorm:"default:false" json:"-"`
}

// Readers decodes the reader set.
func (a *Announcement) Readers() []uint {
	var ids []uint
	if len(a.ReadBy) > 0 {
		_ = json.Unmarshal(a.ReadBy, &ids)
	}
	return ids
}

// SetReaders encodes the reader set back onto the record.
func (a *Announcement) SetReaders(ids []uint) {
	raw, _ := json.Marshal(ids)
	a.ReadBy = raw
}
