package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID   uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Teacher     User      `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Slug        string    `gorm:"size:255;uniqueIndex" json:"slug"` // slug cho URL thân thiện
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:100" json:"category"`
	Level       string    `gorm:"type:VARCHAR(20);default:'beginner'" json:"level"` // beginner | intermediate | advanced
	Price       float64   `gorm:"default:0" json:"price"`
	Thumbnail   string    `gorm:"type:text" json:"thumbnail"`
	Published   bool      `gorm:"default:false" json:"published"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	EnrolledStudents []User          `gorm:"many2many:course_enrollments" json:"enrolled_students,omitempty"`
	Ratings          []Rating        `gorm:"foreignKey:CourseID" json:"ratings,omitempty"`
	Lectures         []Lecture       `gorm:"foreignKey:CourseID" json:"lectures,omitempty"`
	Materials        []StudyMaterial `gorm:"foreignKey:CourseID" json:"materials,omitempty"`
}
