package repositories

import (
	"github.com/rs/zerolog"
	"github.com/yigit/enrollment-api/internal/db"
	"github.com/yigit/enrollment-api/internal/pkg/dberrors"
	"github.com/yigit/enrollment-api/internal/pkg/logger"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database db.Acquirer) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(database),
		CourseRepository:     NewCourseRepository(database),
		EnrollmentRepository: NewEnrollmentRepository(database),
	}
}

// logDBError picks warn for constraint violations and error for everything else
func logDBError(err error) *zerolog.Event {
	if dberrors.IsConstraintViolation(err) {
		return logger.Warn().Err(err).Str("code", dberrors.Code(err))
	}
	return logger.Error().Err(err).Str("code", dberrors.Code(err))
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
