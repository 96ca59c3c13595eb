package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/karisnidevibalan/lms-backend/config"
	"github.com/karisnidevibalan/lms-backend/models"
	"github.com/karisnidevibalan/lms-backend/services"
	"gorm.io/gorm"
)

// CourseController giữ cache response danh sách khoá học
type CourseController struct {
	Cache *services.Cache
}

func NewCourseController(cache *services.Cache) *CourseController {
	return &CourseController{Cache: cache}
}

// Input cho Create / Update
type CourseInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Level       string  `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Price       float64 `json:"price"`
	Thumbnail   string  `json:"thumbnail"`
}

// POST /teacher/courses
func (ct *CourseController) CreateCourse(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên khoá học bắt buộc"})
		return
	}

	teacherID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	// === Kiểm tra trùng tên trong các khoá của giảng viên ===
	var count int64
	db.Model(&models.Course{}).
		Where("teacher_id = ? AND LOWER(title) = LOWER(?)", teacherID, input.Title).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên khoá học đã tồn tại"})
		return
	}

	level := input.Level
	if level == "" {
		level = "beginner"
	}

	course := models.Course{
		TeacherID:   teacherID,
		Title:       input.Title,
		Slug:        slug.Make(input.Title) + "-" + uuid.NewString()[:8],
		Description: input.Description,
		Category:    input.Category,
		Level:       level,
		Price:       input.Price,
		Thumbnail:   input.Thumbnail,
	}

	if err := db.Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không tạo được khoá học"})
		return
	}

	ct.invalidateListCache()
	c.JSON(http.StatusCreated, gin.H{"message": "Tạo khoá học thành công", "course": course})
}

// GET /courses (public, có cache)
func (ct *CourseController) GetCourses(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("courses:%s:%s:%d:%d", search, category, page, limit)
	if cached, ok := ct.Cache.Get(cacheKey); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	query := config.DB.Model(&models.Course{}).Where("published = ?", true)
	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đếm tổng số khoá học"})
		return
	}

	var courses []models.Course
	offset := (page - 1) * limit
	if err := query.Preload("Teacher").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách khoá học"})
		return
	}

	response := gin.H{
		"data":  courses,
		"total": total,
		"page":  page,
		"limit": limit,
	}
	ct.Cache.Set(cacheKey, response)
	c.JSON(http.StatusOK, response)
}

// GET /courses/:id
func (ct *CourseController) GetCourseDetail(c *gin.Context) {
	id := c.Param("id")

	var course models.Course
	if err := config.DB.Preload("Teacher").Preload("Lectures").Preload("Ratings").
		First(&course, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khoá học"})
		return
	}

	// Điểm trung bình từ ratings
	avgStars := 0.0
	if len(course.Ratings) > 0 {
		sum := 0
		for _, r := range course.Ratings {
			sum += r.Stars
		}
		avgStars = float64(sum) / float64(len(course.Ratings))
	}

	var enrolledCount int64
	config.DB.Table("course_enrollments").Where("course_id = ?", course.ID).Count(&enrolledCount)

	c.JSON(http.StatusOK, gin.H{
		"course":         course,
		"average_rating": avgStars,
		"total_ratings":  len(course.Ratings),
		"enrolled_count": enrolledCount,
	})
}

// PUT /teacher/courses/:id
func (ct *CourseController) UpdateCourse(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	course, ok := loadOwnedCourse(c, db)
	if !ok {
		return
	}

	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"category":    input.Category,
		"price":       input.Price,
		"thumbnail":   input.Thumbnail,
	}
	if input.Level != "" {
		updates["level"] = input.Level
	}

	if err := db.Model(course).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không cập nhật được khoá học"})
		return
	}

	ct.invalidateListCache()
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật thành công", "course": course})
}

// PATCH /teacher/courses/:id/toggle-publish
func (ct *CourseController) TogglePublish(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	course, ok := loadOwnedCourse(c, db)
	if !ok {
		return
	}

	if err := db.Model(course).Update("published", !course.Published).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không đổi được trạng thái"})
		return
	}

	ct.invalidateListCache()
	c.JSON(http.StatusOK, gin.H{"message": "Đổi trạng thái thành công", "published": course.Published})
}

// DELETE /teacher/courses/:id
func (ct *CourseController) DeleteCourse(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	course, ok := loadOwnedCourse(c, db)
	if !ok {
		return
	}

	if err := db.Delete(course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa khoá học"})
		return
	}

	ct.invalidateListCache()
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

// Chỉ xoá trang đầu mặc định, các trang khác tự hết hạn theo TTL
func (ct *CourseController) invalidateListCache() {
	ct.Cache.Delete("courses:::1:10")
}
