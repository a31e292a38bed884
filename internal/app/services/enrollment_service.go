package services

import (
	"context"

	"github.com/yigit/enrollment-api/internal/app/models"
	"github.com/yigit/enrollment-api/internal/pkg/logger"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, enrollment *models.Enrollment) error
	Unenroll(ctx context.Context, studentID string, courseID int64) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollmentRepo EnrollmentStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo EnrollmentStore) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
	}
}

// Enroll links a student to a course. Unknown students or courses and duplicates
// are rejected by the schema.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, enrollment *models.Enrollment) error {
	return s.enrollmentRepo.Create(ctx, enrollment)
}

// Unenroll removes an enrollment. Removing an enrollment that does not exist succeeds.
func (s *enrollmentServiceImpl) Unenroll(ctx context.Context, studentID string, courseID int64) error {
	affected, err := s.enrollmentRepo.Delete(ctx, studentID, courseID)
	if err != nil {
		return err
	}

	if affected == 0 {
		logger.Debug().Str("studentID", studentID).Int64("courseID", courseID).Msg("De-enrollment matched no rows")
	}
	return nil
}
