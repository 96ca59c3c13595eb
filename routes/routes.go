package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/karisnidevibalan/lms-backend/controllers"
	"github.com/karisnidevibalan/lms-backend/middleware"
	"github.com/karisnidevibalan/lms-backend/services"
	"github.com/karisnidevibalan/lms-backend/utils"
	"github.com/karisnidevibalan/lms-backend/ws"
	"gorm.io/gorm"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	// Cache response: danh sách khoá học 5 phút, nội dung học 30 phút
	courseCache := services.NewCache(256, 5*time.Minute, nil)
	contentCache := services.NewCache(512, 30*time.Minute, nil)
	utils.StartCacheSweepJob(courseCache, contentCache)

	gemini := services.GeminiProvider{}
	courseCtl := controllers.NewCourseController(courseCache)
	contentCtl := controllers.NewContentController(contentCache, &services.AIContentService{Provider: gemini})
	narrationCtl := controllers.NewNarrationController(gemini)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logingoogle", controllers.GoogleLogin)
	}

	// Public: xem khoá học không cần đăng nhập
	public := api.Group("/courses")
	{
		public.Use(middleware.DBMiddleware(db))
		public.GET("", courseCtl.GetCourses)
		public.GET("/:id", courseCtl.GetCourseDetail)
		public.GET("/:id/lectures", controllers.GetLectures)
		public.GET("/:id/ratings", controllers.GetCourseRatings)
		public.GET("/:id/quizzes", controllers.GetQuizSets)
	}

	teacher := api.Group("/teacher")
	{
		teacher.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db), middleware.RequireRoles("admin", "teacher"))

		// Quản lý khoá học
		teacher.POST("/courses", courseCtl.CreateCourse)
		teacher.PUT("/courses/:id", courseCtl.UpdateCourse)
		teacher.DELETE("/courses/:id", courseCtl.DeleteCourse)
		teacher.PATCH("/courses/:id/toggle-publish", courseCtl.TogglePublish)

		// Quản lý bài giảng
		teacher.POST("/courses/:id/lectures", controllers.CreateLecture)
		teacher.PUT("/lectures/:id", controllers.UpdateLecture)
		teacher.DELETE("/lectures/:id", controllers.DeleteLecture)

		// Quản lý quiz
		teacher.POST("/courses/:id/quizzes", controllers.CreateQuizSet)
		teacher.POST("/quizzes/:id/questions", controllers.AddQuizQuestion)

		// Quản lý tài liệu học
		teacher.POST("/materials", controllers.UploadMaterial)
		teacher.GET("/materials", controllers.GetMaterials)
		teacher.GET("/materials/:id", controllers.GetMaterialDetail)
		teacher.DELETE("/materials/:id", controllers.DeleteMaterial)
	}

	student := api.Group("/student")
	{
		student.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))

		// Ghi danh + đánh giá
		student.POST("/courses/:id/enroll", controllers.EnrollCourse)
		student.GET("/courses", controllers.GetMyCourses)
		student.POST("/courses/:id/rating", controllers.RateCourse)

		// Nội dung học thích ứng + thuyết minh
		student.GET("/materials/:id", controllers.GetMaterialDetail)
		student.POST("/materials/:id/content", contentCtl.GetStudyContent)
		student.POST("/materials/:id/narration", narrationCtl.GenerateNarration)

		// Quiz
		student.POST("/quizzes/:id/attempt", controllers.SubmitQuizAttempt)

		// Phiên học + thống kê
		student.POST("/sessions", controllers.StartSession)
		student.PUT("/sessions/:id", controllers.EndSession)
		student.GET("/sessions", controllers.GetMySessions)
		student.GET("/analytics", controllers.GetStudentAnalytics)
	}

	r.GET("/ws/material/:id", ws.HandleMaterialWebSocket)
	r.GET("/ws/status", ws.HandleGlobalWebSocket)

	return r
}
