package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/karisnidevibalan/lms-backend/models"
	"gorm.io/gorm"
)

type LectureInput struct {
	Title    string `json:"title" binding:"required"`
	VideoURL string `json:"video_url"`
	Notes    string `json:"notes"`
	Order    int    `json:"order"`
	Duration int    `json:"duration"`
}

// POST /teacher/courses/:id/lectures
func CreateLecture(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	course, ok := loadOwnedCourse(c, db)
	if !ok {
		return
	}

	var input LectureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên bài giảng bắt buộc"})
		return
	}

	lecture := models.Lecture{
		CourseID: course.ID,
		Title:    input.Title,
		VideoURL: input.VideoURL,
		Notes:    input.Notes,
		Order:    input.Order,
		Duration: input.Duration,
	}

	if err := db.Create(&lecture).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không tạo được bài giảng"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tạo bài giảng thành công", "lecture": lecture})
}

// GET /courses/:id/lectures
func GetLectures(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var lectures []models.Lecture
	if err := db.Where("course_id = ?", courseID).
		Order("lecture_order ASC").
		Find(&lectures).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách bài giảng"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": lectures})
}

// PUT /teacher/lectures/:id
func UpdateLecture(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	lecture, ok := loadOwnedLecture(c, db)
	if !ok {
		return
	}

	var input LectureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":         input.Title,
		"video_url":     input.VideoURL,
		"notes":         input.Notes,
		"lecture_order": input.Order,
		"duration":      input.Duration,
	}
	if err := db.Model(lecture).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không cập nhật được bài giảng"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật thành công", "lecture": lecture})
}

// DELETE /teacher/lectures/:id
func DeleteLecture(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	lecture, ok := loadOwnedLecture(c, db)
	if !ok {
		return
	}

	if err := db.Delete(lecture).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa bài giảng"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

// loadOwnedCourse load khoá học từ param :id và kiểm tra quyền sở hữu
func loadOwnedCourse(c *gin.Context, db *gorm.DB) (*models.Course, bool) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return nil, false
	}

	var course models.Course
	if err := db.First(&course, "id = ?", courseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khoá học"})
		return nil, false
	}

	role := c.GetString("role")
	if role != string(models.RoleAdmin) && course.TeacherID.String() != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không sở hữu khoá học này"})
		return nil, false
	}
	return &course, true
}

func loadOwnedLecture(c *gin.Context, db *gorm.DB) (*models.Lecture, bool) {
	lectureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return nil, false
	}

	var lecture models.Lecture
	if err := db.Preload("Course").First(&lecture, "id = ?", lectureID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy bài giảng"})
		return nil, false
	}

	role := c.GetString("role")
	if role != string(models.RoleAdmin) && lecture.Course.TeacherID.String() != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không sở hữu bài giảng này"})
		return nil, false
	}
	return &lecture, true
}
