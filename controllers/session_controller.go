package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/karisnidevibalan/lms-backend/models"
	"github.com/karisnidevibalan/lms-backend/services"
	"gorm.io/gorm"
)

type StartSessionInput struct {
	MaterialID    string `json:"material_id" binding:"required"`
	StudyMode     string `json:"study_mode" binding:"required,oneof=quick medium detailed"`
	TimeAvailable int    `json:"time_available"`
	CharacterUsed string `json:"character_used"`
}

// POST /student/sessions — bắt đầu phiên học
func StartSession(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	studentID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var input StartSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	materialID, err := uuid.Parse(input.MaterialID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "material_id không hợp lệ"})
		return
	}

	var material models.StudyMaterial
	if err := db.First(&material, "id = ?", materialID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tài liệu"})
		return
	}

	if !isEnrolled(db, material.CourseID, studentID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn chưa ghi danh khoá học này"})
		return
	}

	session := models.StudySession{
		StudentID:     studentID,
		MaterialID:    material.ID,
		CourseID:      material.CourseID,
		StudyMode:     input.StudyMode,
		TimeAvailable: input.TimeAvailable,
		CharacterUsed: input.CharacterUsed,
		StartTime:     time.Now(),
	}

	if err := db.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không tạo được phiên học"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Bắt đầu phiên học", "session": session})
}

type EndSessionInput struct {
	TimeSpent            int     `json:"time_spent"`
	CompletionPercentage float64 `json:"completion_percentage"`
	QuestionsAnswered    int     `json:"questions_answered"`
	QuestionsCorrect     int     `json:"questions_correct"`
	UsedVoiceNarration   bool    `json:"used_voice_narration"`
}

// PUT /student/sessions/:id — kết thúc phiên học, cập nhật 1 lần
func EndSession(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var session models.StudySession
	if err := db.First(&session, "id = ?", sessionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy phiên học"})
		return
	}

	if session.StudentID.String() != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Đây không phải phiên học của bạn"})
		return
	}
	if session.EndTime != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phiên học đã kết thúc rồi"})
		return
	}

	var input EndSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.QuestionsCorrect > input.QuestionsAnswered {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Số câu đúng vượt quá số câu đã trả lời"})
		return
	}

	now := time.Now()
	session.TimeSpent = input.TimeSpent
	session.CompletionPercentage = input.CompletionPercentage
	session.QuestionsAnswered = input.QuestionsAnswered
	session.QuestionsCorrect = input.QuestionsCorrect
	session.UsedVoiceNarration = input.UsedVoiceNarration
	session.EndTime = &now

	// Save để BeforeSave tính lại performance score
	if err := db.Save(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không cập nhật được phiên học"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Kết thúc phiên học", "session": session})
}

// GET /student/sessions — lịch sử phiên học của sinh viên
func GetMySessions(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	studentID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var sessions []models.StudySession
	if err := db.Preload("Material").
		Where("student_id = ?", studentID).
		Order("start_time DESC").
		Find(&sessions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy lịch sử phiên học"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sessions})
}

// GET /student/analytics — thống kê học tập tổng hợp của sinh viên
func GetStudentAnalytics(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	studentID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var sessions []models.StudySession
	if err := db.Where("student_id = ?", studentID).
		Order("start_time DESC").
		Find(&sessions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy lịch sử phiên học"})
		return
	}

	summary := services.AggregateSessions(sessions, time.Now())
	c.JSON(http.StatusOK, summary)
}
