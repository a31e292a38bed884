package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment-api/internal/app/models/dto"
	"github.com/yigit/enrollment-api/internal/app/services"
	"github.com/yigit/enrollment-api/internal/middleware"
	"github.com/yigit/enrollment-api/internal/pkg/apperrors"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// RegisterStudent handles student registration
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewOperationError(err, apperrors.CodeInvalidRequest))
		return
	}

	id, err := c.studentService.RegisterStudent(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RegisterStudentResponse{
		ID:      id,
		Message: dto.MsgStudentRegistered,
	})
}

// GetStudents lists all students with their enrolled courses
func (c *StudentController) GetStudents(ctx *gin.Context) {
	students, err := c.studentService.GetStudentsWithCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}
