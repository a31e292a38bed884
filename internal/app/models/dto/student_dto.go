package dto

import "github.com/yigit/enrollment-api/internal/app/models"

// RegisterStudentRequest is the body of POST /api/students/register
type RegisterStudentRequest struct {
	StudentID *string `json:"studentId"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Program   *string `json:"program"`
}

// ToModel maps the request onto the insert model
func (r RegisterStudentRequest) ToModel() *models.StudentRegistration {
	return &models.StudentRegistration{
		StudentID: r.StudentID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Program:   r.Program,
	}
}

// RegisterStudentResponse carries the generated key of the new student
type RegisterStudentResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
