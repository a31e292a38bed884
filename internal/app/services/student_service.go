package services

import (
	"context"

	"github.com/yigit/enrollment-api/internal/app/models"
)

// StudentService defines the interface for student operations
type StudentService interface {
	RegisterStudent(ctx context.Context, student *models.StudentRegistration) (int64, error)
	GetStudentsWithCourses(ctx context.Context) ([]*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// RegisterStudent stores a new student. Field checks are left to the schema.
func (s *studentServiceImpl) RegisterStudent(ctx context.Context, student *models.StudentRegistration) (int64, error) {
	return s.studentRepo.Create(ctx, student)
}

// GetStudentsWithCourses lists every student with their enrolled courses
func (s *studentServiceImpl) GetStudentsWithCourses(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.ListWithCourses(ctx)
}
