package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/karisnidevibalan/lms-backend/models"
	"github.com/karisnidevibalan/lms-backend/services"
	"gorm.io/gorm"
)

// ContentController sinh nội dung học thích ứng theo study mode
type ContentController struct {
	Cache *services.Cache
	AI    *services.AIContentService
}

func NewContentController(cache *services.Cache, ai *services.AIContentService) *ContentController {
	return &ContentController{Cache: cache, AI: ai}
}

type StudyContentInput struct {
	StudyMode     string `json:"study_mode" binding:"required"`
	TimeAvailable int    `json:"time_available"`
	Language      string `json:"language"`
	UseAI         bool   `json:"use_ai"`
}

// POST /student/materials/:id/content
func (ct *ContentController) GetStudyContent(c *gin.Context) {
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

	var input StudyContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cacheKey := fmt.Sprintf("content:%s:%s:%s", material.ID, input.StudyMode, input.Language)
	if cached, found := ct.Cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	var content *services.StudyContent
	if input.UseAI {
		content, err = ct.AI.Generate(material, input.StudyMode)
	} else {
		content, err = services.GenerateStudyContent(material, input.StudyMode)
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidStudyMode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không sinh được nội dung học"})
		return
	}

	// Dịch phần summary nếu client yêu cầu ngôn ngữ khác
	if input.Language != "" && input.Language != "en" && ct.AI.Provider != nil && content.Quick != nil {
		if translated, err := services.TranslateText(ct.AI.Provider, content.Quick.Summary, input.Language); err == nil {
			content.Quick.Summary = translated
		}
	}

	response := gin.H{
		"material_id":    material.ID,
		"study_mode":     input.StudyMode,
		"time_available": input.TimeAvailable,
		"content":        content,
	}
	ct.Cache.Set(cacheKey, response)

	// Lưu cache nội dung theo mode trên bản ghi tài liệu
	if material.CachedContent == nil {
		material.CachedContent = map[string]interface{}{}
	}
	material.CachedContent[input.StudyMode] = content
	db.Model(material).Update("cached_content", material.CachedContent)

	c.JSON(http.StatusOK, response)
}
