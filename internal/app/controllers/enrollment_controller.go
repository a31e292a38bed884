package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment-api/internal/app/models/dto"
	"github.com/yigit/enrollment-api/internal/app/services"
	"github.com/yigit/enrollment-api/internal/middleware"
	"github.com/yigit/enrollment-api/internal/pkg/apperrors"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll enrolls a student in a course
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewOperationError(err, apperrors.CodeInvalidRequest))
		return
	}

	if err := c.enrollmentService.Enroll(ctx.Request.Context(), req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: dto.MsgEnrollmentCreated})
}

// Unenroll removes a student from a course
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	courseID, err := strconv.ParseInt(ctx.Param("courseId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewOperationError(err, apperrors.CodeInvalidRequest))
		return
	}

	if err := c.enrollmentService.Unenroll(ctx.Request.Context(), studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: dto.MsgEnrollmentRemoved})
}
