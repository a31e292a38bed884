package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment-api/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	healthController *controllers.HealthController,
) {
	router.GET("/health", healthController.Health)

	api := router.Group("/api")

	students := api.Group("/students")
	{
		students.POST("/register", studentController.RegisterStudent)
		students.GET("", studentController.GetStudents)
	}

	api.GET("/courses", courseController.GetAllCourses)

	enrollments := api.Group("/enrollments")
	{
		enrollments.POST("", enrollmentController.Enroll)
		enrollments.DELETE("/:studentId/:courseId", enrollmentController.Unenroll)
	}
}
