package services

import (
	"context"

	"github.com/yigit/enrollment-api/internal/app/models"
)

// CourseService defines the interface for course operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
}

type courseServiceImpl struct {
	courseRepo CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}
