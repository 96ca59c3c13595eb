package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Phiên học của sinh viên với 1 tài liệu
type StudySession struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	StudentID  uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	MaterialID uuid.UUID `gorm:"type:uuid;not null;index" json:"material_id"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`

	StudyMode     string `gorm:"type:VARCHAR(20);default:'medium'" json:"study_mode"` // quick | medium | detailed
	TimeAvailable int    `json:"time_available"`                                      // phút sinh viên có
	CharacterUsed string `gorm:"size:50" json:"character_used"`

	TimeSpent            int     `json:"time_spent"` // phút thực học
	CompletionPercentage float64 `gorm:"default:0" json:"completion_percentage"`
	QuestionsAnswered    int     `gorm:"default:0" json:"questions_answered"`
	QuestionsCorrect     int     `gorm:"default:0" json:"questions_correct"`
	PerformanceScore     *float64 `gorm:"type:numeric(5,2)" json:"performance_score,omitempty"`
	UsedVoiceNarration   bool    `gorm:"default:false" json:"used_voice_narration"`

	StartTime time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	Student  User          `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Material StudyMaterial `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"material,omitempty"`
	Course   Course        `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeSave tính lại điểm từ số câu đúng / số câu đã trả lời.
// Luôn tính lại mỗi lần save để tránh lệch dữ liệu.
func (s *StudySession) BeforeSave(tx *gorm.DB) error {
	if s.QuestionsAnswered > 0 {
		score := float64(s.QuestionsCorrect) / float64(s.QuestionsAnswered) * 100
		s.PerformanceScore = &score
	}
	return nil
}
