package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/karisnidevibalan/lms-backend/models"
	"github.com/karisnidevibalan/lms-backend/utils"
	"gorm.io/gorm"
)

// POST /student/courses/:id/enroll
func EnrollCourse(c *gin.Context) {
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

	var course models.Course
	if err := db.First(&course, "id = ? AND published = ?", courseID, true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khoá học"})
		return
	}

	// Đã ghi danh rồi thì bỏ qua
	var count int64
	db.Table("course_enrollments").
		Where("course_id = ? AND user_id = ?", courseID, studentID).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bạn đã ghi danh khoá học này rồi"})
		return
	}

	var student models.User
	if err := db.First(&student, "id = ?", studentID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	if err := db.Model(&course).Association("EnrolledStudents").Append(&student); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không ghi danh được"})
		return
	}

	// Mail xác nhận: lỗi gửi mail không chặn ghi danh
	go func() {
		if err := utils.SendEnrollmentEmail(student.Email, student.FullName, course.Title); err != nil {
			log.Println("Lỗi gửi mail ghi danh:", err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"message": "Ghi danh thành công", "course": course})
}

// GET /student/courses
func GetMyCourses(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	studentID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var student models.User
	if err := db.Preload("EnrolledCourses.Teacher").First(&student, "id = ?", studentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": student.EnrolledCourses})
}

// isEnrolled kiểm tra sinh viên đã ghi danh khoá học chưa
func isEnrolled(db *gorm.DB, courseID, studentID uuid.UUID) bool {
	var count int64
	db.Table("course_enrollments").
		Where("course_id = ? AND user_id = ?", courseID, studentID).
		Count(&count)
	return count > 0
}
