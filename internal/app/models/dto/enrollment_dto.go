package dto

import "github.com/yigit/enrollment-api/internal/app/models"

// EnrollmentRequest is the body of POST /api/enrollments
type EnrollmentRequest struct {
	StudentID *string `json:"studentId"`
	CourseID  *int64  `json:"courseId"`
}

// ToModel maps the request onto the enrollment model
func (r EnrollmentRequest) ToModel() *models.Enrollment {
	return &models.Enrollment{
		StudentID: r.StudentID,
		CourseID:  r.CourseID,
	}
}
