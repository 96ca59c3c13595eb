package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/karisnidevibalan/lms-backend/models"
	"github.com/karisnidevibalan/lms-backend/services"
	"github.com/karisnidevibalan/lms-backend/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NarrationController sinh audio thuyết minh cho tài liệu học
type NarrationController struct {
	Provider services.ContentProvider
}

func NewNarrationController(provider services.ContentProvider) *NarrationController {
	return &NarrationController{Provider: provider}
}

type NarrationInput struct {
	Voice        string  `json:"voice"`
	Language     string  `json:"language"`
	SpeakingRate float64 `json:"speaking_rate"`
}

// POST /student/materials/:id/narration
func (ct *NarrationController) GenerateNarration(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	studentID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	material, ok := loadMaterial(c, db)
	if !ok {
		return
	}

	role := c.GetString("role")
	if role == string(models.RoleStudent) && !isEnrolled(db, material.CourseID, studentID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn chưa ghi danh khoá học này"})
		return
	}

	var input NarrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if input.Language == "" {
		input.Language = "en-US"
	}

	// Đã có audio cùng giọng + ngôn ngữ thì trả cache
	if material.Narration != nil {
		info := material.Narration.Data()
		if info.AudioURL != "" && info.Language == input.Language &&
			(input.Voice == "" || info.Voice == input.Voice) {
			c.JSON(http.StatusOK, gin.H{"narration": info, "cached": true})
			return
		}
	}

	// Kịch bản đọc: LLM lỗi thì dùng kịch bản tối giản từ keyword
	script, err := services.NarrationScript(ct.Provider, material)
	if err != nil {
		log.Printf("Gemini lỗi, dùng kịch bản mặc định: %v", err)
		script = fmt.Sprintf("This material, %s, covers the following topics: %s.",
			material.Title, strings.Join(material.Keywords, ", "))
	}

	audio, err := services.SynthesizeText(script, input.Voice, input.Language, input.SpeakingRate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không tạo được audio", "details": err.Error()})
		return
	}

	duration, err := services.GetMP3Duration(audio)
	if err != nil {
		log.Printf("Không tính được thời lượng audio: %v", err)
	}

	filename := fmt.Sprintf("%s-%s.mp3", material.ID, input.Language)
	audioURL, err := utils.UploadNarrationToSupabase(audio, filename, "audio/mpeg")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi upload audio", "details": err.Error()})
		return
	}

	info := models.NarrationInfo{
		AudioURL:    audioURL,
		Voice:       input.Voice,
		Language:    input.Language,
		DurationSec: duration,
		GeneratedAt: time.Now(),
	}
	narration := datatypes.NewJSONType(info)
	if err := db.Model(material).Update("narration", narration).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không lưu được metadata audio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"narration": info, "cached": false})
}
