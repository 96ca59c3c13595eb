package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/karisnidevibalan/lms-backend/models"
	"github.com/karisnidevibalan/lms-backend/services"
	"github.com/karisnidevibalan/lms-backend/utils"
	"github.com/karisnidevibalan/lms-backend/ws"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func materialUploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads/materials"
}

// POST /teacher/materials — upload tài liệu học + trích xuất keyword
func UploadMaterial(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	teacherID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	courseID, err := uuid.Parse(c.PostForm("course_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_id không hợp lệ"})
		return
	}

	var course models.Course
	if err := db.First(&course, "id = ?", courseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khoá học"})
		return
	}
	role := c.GetString("role")
	if role != string(models.RoleAdmin) && course.TeacherID != teacherID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không sở hữu khoá học này"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file đính kèm"})
		return
	}
	if file.Size > utils.MaxMaterialFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File vượt quá 100MB"})
		return
	}

	ext := filepath.Ext(file.Filename)
	if err := utils.ValidateMaterialExt(ext); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu tiêu đề tài liệu"})
		return
	}

	difficulty := c.DefaultPostForm("difficulty", "medium")
	switch difficulty {
	case "easy", "medium", "hard":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "difficulty phải là easy/medium/hard"})
		return
	}

	estimatedMinutes, _ := strconv.Atoi(c.DefaultPostForm("study_time", "30"))
	if estimatedMinutes <= 0 {
		estimatedMinutes = 30
	}

	materialID := uuid.New()
	savePath := filepath.Join(materialUploadDir(), materialID.String()+ext)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không lưu được file", "details": err.Error()})
		return
	}

	ws.SendMaterialStatus(materialID.String(), "Đang trích xuất", 0, "")

	// Trích xuất text: lỗi chỉ log, upload vẫn thành công với 0 keyword
	var autoKeywords []string
	text, err := services.ExtractTextFromFile(savePath, file.Filename)
	if err != nil {
		log.Printf("Trích xuất thất bại, bỏ qua keyword: %v", err)
	} else {
		autoKeywords = services.ExtractKeywords(text, services.MaxKeywords)
	}

	// Keyword thủ công từ form, phân tách bằng dấu phẩy
	var manualKeywords []string
	for _, kw := range strings.Split(c.PostForm("keywords"), ",") {
		kw = strings.TrimSpace(strings.ToLower(kw))
		if kw != "" {
			manualKeywords = append(manualKeywords, kw)
		}
	}

	// Thủ công đứng trước, sau đó auto, rồi keyword từ tên file + tên khoá học
	combined := append(append([]string{}, manualKeywords...), autoKeywords...)
	finalKeywords := services.EnhanceKeywords(combined, file.Filename, course.Title)

	material := models.StudyMaterial{
		ID:               materialID,
		CourseID:         course.ID,
		TeacherID:        teacherID,
		Title:            title,
		Description:      c.PostForm("description"),
		Chapter:          c.PostForm("chapter"),
		Difficulty:       difficulty,
		EstimatedMinutes: estimatedMinutes,
		Keywords:         datatypes.NewJSONSlice(finalKeywords),
		OriginalName:     file.Filename,
		FilePath:         savePath,
		FileType:         strings.TrimPrefix(strings.ToLower(ext), "."),
		FileSize:         file.Size,
	}

	if err := db.Create(&material).Error; err != nil {
		os.Remove(savePath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không lưu được tài liệu", "details": err.Error()})
		return
	}

	ws.SendMaterialStatus(materialID.String(), "Hoàn thành", len(finalKeywords), "")
	ws.BroadcastMaterialListChanged()

	c.JSON(http.StatusOK, gin.H{
		"message":                 "Tải lên thành công",
		"material":                material,
		"auto_extracted_keywords": autoKeywords,
		"total_keywords":          len(finalKeywords),
	})
}

// GET /teacher/materials — danh sách tài liệu của giảng viên
func GetMaterials(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := db.Model(&models.StudyMaterial{})

	role := c.GetString("role")
	if role == string(models.RoleTeacher) {
		query = query.Where("teacher_id = ?", c.GetString("user_id"))
	}
	// admin: không thêm filter, lấy tất cả

	if courseID := c.Query("course_id"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}

	// tìm kiếm theo tên
	if search := c.Query("search"); search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	// phân trang
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đếm tổng số tài liệu"})
		return
	}

	var materials []models.StudyMaterial
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&materials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách tài liệu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  materials,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GET /materials/:id — chi tiết, ẩn file path với người ngoài
func GetMaterialDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	material, ok := loadMaterial(c, db)
	if !ok {
		return
	}

	if !canAccessMaterialFile(c, db, material) {
		// Không phải chủ sở hữu và chưa ghi danh: không lộ đường dẫn file
		material.FilePath = ""
	}

	c.JSON(http.StatusOK, material)
}

// DELETE /teacher/materials/:id — xóa tài liệu kèm file
func DeleteMaterial(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	material, ok := loadMaterial(c, db)
	if !ok {
		return
	}

	role := c.GetString("role")
	if role != string(models.RoleAdmin) && material.TeacherID.String() != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không sở hữu tài liệu này"})
		return
	}

	if err := db.Delete(material).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa tài liệu"})
		return
	}

	// Xóa file trên đĩa + audio thuyết minh trên storage
	if material.FilePath != "" {
		if err := os.Remove(material.FilePath); err != nil && !os.IsNotExist(err) {
			log.Printf("Không xóa được file %s: %v", material.FilePath, err)
		}
	}
	if material.Narration != nil {
		if err := utils.DeleteFileFromSupabase(material.Narration.Data().AudioURL); err != nil {
			log.Printf("Không xóa được audio thuyết minh: %v", err)
		}
	}

	ws.BroadcastMaterialListChanged()
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

func loadMaterial(c *gin.Context, db *gorm.DB) (*models.StudyMaterial, bool) {
	materialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return nil, false
	}

	var material models.StudyMaterial
	if err := db.First(&material, "id = ?", materialID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tài liệu"})
		return nil, false
	}
	return &material, true
}

// canAccessMaterialFile: chủ sở hữu, admin, hoặc sinh viên đã ghi danh khoá học
func canAccessMaterialFile(c *gin.Context, db *gorm.DB, material *models.StudyMaterial) bool {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return false
	}
	role := c.GetString("role")
	if role == string(models.RoleAdmin) || material.TeacherID == userID {
		return true
	}
	return isEnrolled(db, material.CourseID, userID)
}
