package services

import (
	"context"

	"github.com/yigit/enrollment-api/internal/app/models"
)

// Storage contracts the services depend on. The repositories package satisfies them.

// StudentStore persists and lists students
type StudentStore interface {
	Create(ctx context.Context, student *models.StudentRegistration) (int64, error)
	ListWithCourses(ctx context.Context) ([]*models.Student, error)
}

// CourseStore lists courses
type CourseStore interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
}

// EnrollmentStore creates and removes enrollments
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, studentID string, courseID int64) (int64, error)
}

// Pinger reports database reachability
type Pinger interface {
	Ping(ctx context.Context) error
}
