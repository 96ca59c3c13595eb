package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/karisnidevibalan/lms-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingInput struct {
	Stars  int    `json:"stars" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// POST /student/courses/:id/rating — chỉ sinh viên đã ghi danh, upsert
func RateCourse(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	studentID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Số sao phải từ 1 đến 5"})
		return
	}

	if !isEnrolled(db, courseID, studentID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn chưa ghi danh khoá học này"})
		return
	}

	rating := models.Rating{
		CourseID:  courseID,
		StudentID: studentID,
		Stars:     input.Stars,
		Review:    input.Review,
	}

	// Mỗi sinh viên 1 đánh giá / khoá: đánh giá lại thì ghi đè
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stars", "review", "updated_at"}),
	}).Create(&rating).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không lưu được đánh giá"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đánh giá thành công", "rating": rating})
}

// GET /courses/:id/ratings
func GetCourseRatings(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var ratings []models.Rating
	if err := db.Preload("Student").
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách đánh giá"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ratings})
}
