package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/karisnidevibalan/lms-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuizSetInput struct {
	Title string `json:"title" binding:"required"`
}

type QuizQuestionInput struct {
	Question   string   `json:"question" binding:"required"`
	Options    []string `json:"options" binding:"required,min=2"`
	CorrectIdx int      `json:"correct_idx"`
	Difficulty string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

// POST /teacher/courses/:id/quizzes
func CreateQuizSet(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	course, ok := loadOwnedCourse(c, db)
	if !ok {
		return
	}

	var input QuizSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên quiz bắt buộc"})
		return
	}

	teacherID, _ := uuid.Parse(c.GetString("user_id"))
	quizSet := models.QuizSet{
		CourseID:  course.ID,
		Title:     input.Title,
		CreatedBy: teacherID,
	}

	if err := db.Create(&quizSet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không tạo được quiz"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tạo quiz thành công", "quiz_set": quizSet})
}

// POST /teacher/quizzes/:id/questions
func AddQuizQuestion(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	quizSetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var quizSet models.QuizSet
	if err := db.Preload("Course").First(&quizSet, "id = ?", quizSetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quiz"})
		return
	}

	role := c.GetString("role")
	if role != string(models.RoleAdmin) && quizSet.Course.TeacherID.String() != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không sở hữu quiz này"})
		return
	}

	var input QuizQuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.CorrectIdx < 0 || input.CorrectIdx >= len(input.Options) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "correct_idx nằm ngoài danh sách đáp án"})
		return
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = "easy"
	}

	question := models.QuizQuestion{
		QuizSetID:  quizSet.ID,
		Question:   input.Question,
		Options:    datatypes.NewJSONSlice(input.Options),
		CorrectIdx: input.CorrectIdx,
		Difficulty: difficulty,
	}

	if err := db.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không lưu được câu hỏi"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thêm câu hỏi thành công", "question": question})
}

// GET /courses/:id/quizzes
func GetQuizSets(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var quizSets []models.QuizSet
	if err := db.Preload("Questions").
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&quizSets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": quizSets})
}

type QuizSubmitInput struct {
	Answers map[string]int `json:"answers" binding:"required"` // questionID -> index đã chọn
}

// POST /student/quizzes/:id/attempt
func SubmitQuizAttempt(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	studentID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	quizSetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var quizSet models.QuizSet
	if err := db.Preload("Questions").First(&quizSet, "id = ?", quizSetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quiz"})
		return
	}

	if !isEnrolled(db, quizSet.CourseID, studentID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn chưa ghi danh khoá học này"})
		return
	}

	var input QuizSubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(quizSet.Questions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quiz chưa có câu hỏi"})
		return
	}

	correct := 0
	for _, q := range quizSet.Questions {
		if chosen, ok := input.Answers[q.ID.String()]; ok && chosen == q.CorrectIdx {
			correct++
		}
	}
	score := float64(correct) / float64(len(quizSet.Questions)) * 100

	attempt := models.QuizAttempt{
		StudentID: studentID,
		QuizSetID: quizSet.ID,
		Score:     score,
	}
	if err := db.Create(&attempt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không lưu được kết quả"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Nộp bài thành công",
		"score":           score,
		"correct":         correct,
		"total_questions": len(quizSet.Questions),
	})
}
