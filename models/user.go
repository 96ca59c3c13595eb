package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"   // Quản trị hệ thống
	RoleTeacher UserRole = "teacher" // Giảng viên (quản lý khoá học)
	RoleStudent UserRole = "student" // Sinh viên (người học)
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName  string    `gorm:"size:150;not null" json:"full_name"`
	Email     string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      UserRole  `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	Status    *bool     `gorm:"default:true" json:"status"` // false: tài khoản bị tạm khóa
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Quan hệ
	CoursesTaught   []Course        `gorm:"foreignKey:TeacherID" json:"courses_taught,omitempty"`
	EnrolledCourses []Course        `gorm:"many2many:course_enrollments" json:"enrolled_courses,omitempty"`
	Ratings         []Rating        `gorm:"foreignKey:StudentID" json:"ratings,omitempty"`
	Materials       []StudyMaterial `gorm:"foreignKey:TeacherID" json:"materials,omitempty"`
	Sessions        []StudySession  `gorm:"foreignKey:StudentID" json:"sessions,omitempty"`
}
