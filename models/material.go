package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Metadata audio thuyết minh đã sinh cho tài liệu
type NarrationInfo struct {
	AudioURL    string    `json:"audio_url"`
	Voice       string    `json:"voice"`
	Language    string    `json:"language"`
	DurationSec float64   `json:"duration_sec"`
	GeneratedAt time.Time `json:"generated_at"`
}

type StudyMaterial struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Course    Course    `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Teacher   User      `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"-"`

	Title            string `gorm:"size:255;not null" json:"title"`
	Description      string `gorm:"type:text" json:"description"`
	Chapter          string `gorm:"size:255" json:"chapter"`
	Difficulty       string `gorm:"type:VARCHAR(20);default:'medium'" json:"difficulty"` // easy | medium | hard
	EstimatedMinutes int    `gorm:"default:30" json:"estimated_minutes"`

	// Keyword chỉ được trích xuất 1 lần khi upload, tối đa 20 từ
	Keywords datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"keywords"`

	OriginalName string `gorm:"size:255;not null" json:"original_name"`
	FilePath     string `gorm:"type:text;not null" json:"file_path,omitempty"`
	FileType     string `gorm:"size:50" json:"file_type"`
	FileSize     int64  `json:"file_size"` // bytes

	// Cache nội dung học theo từng study mode (quick/medium/detailed)
	CachedContent datatypes.JSONMap                  `gorm:"type:jsonb" json:"cached_content,omitempty"`
	Narration     *datatypes.JSONType[NarrationInfo] `gorm:"type:jsonb" json:"narration,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
