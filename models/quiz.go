package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuizSet struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Course   Course    `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`

	Title         string    `gorm:"size:255;not null" json:"title"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedByUser User      `gorm:"foreignKey:CreatedBy;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizSetID" json:"questions,omitempty"`
}

type QuizQuestion struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuizSetID uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_set_id"`
	QuizSet   QuizSet   `gorm:"foreignKey:QuizSetID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	Question   string                      `gorm:"type:text;not null" json:"question"`
	Options    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"options"`
	CorrectIdx int                         `gorm:"default:0" json:"correct_idx"`
	Difficulty string                      `gorm:"size:20;default:'easy'" json:"difficulty"`
	CreatedAt  time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}

type QuizAttempt struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Student   User      `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	QuizSetID uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_set_id"`
	QuizSet   QuizSet   `gorm:"foreignKey:QuizSetID;constraint:OnDelete:CASCADE" json:"-"`

	Score   float64   `gorm:"type:numeric(5,2)" json:"score"`
	TakenAt time.Time `gorm:"autoCreateTime" json:"taken_at"`
}
