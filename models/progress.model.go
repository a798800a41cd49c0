package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Progress struct {
	gorm.Model
	UserID             uint           `gorm:"not null;index:idx_progress_user_course" json:"userId"`
	CourseID           uint           `gorm:"not null;index:idx_progress_user_course" json:"courseId"`
	CompletedLessons   datatypes.JSON `json:"completedLessons"`
	ProgressPercentage int            `gorm:"default:0" json:"progressPercentage"`
	LastAccessedLesson uint           `gorm:"default:0" json:"lastAccessedLesson"`
	IsDeleted          bool           `gorm:"default:false" json:"-"`
}

// CompletedList decodes the completed-lesson set. A missing or malformed
// column reads as empty.
func (p *Progress) CompletedList() []uint {
	var ids []uint
	if len(p.CompletedLessons) > 0 {
		_ = json.Unmarshal(p.CompletedLessons, &ids)
	}
	return ids
}

// SetCompletedList encodes the completed-lesson set back onto the record.
func (p *Progress) SetCompletedList(ids []uint) {
	raw, _ := json.Marshal(ids)
	p.CompletedLessons = raw
}
