package models

import (
	"time"

	"github.com/google/uuid"
)

// Đánh giá khoá học: mỗi sinh viên chỉ có 1 đánh giá cho 1 khoá
type Rating struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_course_student" json:"course_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_course_student" json:"student_id"`

	Stars     int       `gorm:"not null" json:"stars"` // 1..5
	Review    string    `gorm:"type:text" json:"review"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Course  Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	Student User   `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
}
