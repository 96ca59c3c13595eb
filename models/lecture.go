package models

import (
	"time"

	"github.com/google/uuid"
)

// Bài giảng trong khoá học, sắp xếp theo Order
type Lecture struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Course   Course    `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`

	Title    string `gorm:"size:255;not null" json:"title"`
	VideoURL string `gorm:"type:text" json:"video_url"`
	Notes    string `gorm:"type:text" json:"notes"`
	Order    int    `gorm:"column:lecture_order;default:0" json:"order"`
	Duration int    `json:"duration"` // phút

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
