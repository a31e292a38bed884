package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/enrollment-api/internal/app/models"
	"github.com/yigit/enrollment-api/internal/db"
	"github.com/yigit/enrollment-api/internal/pkg/dberrors"
	"github.com/yigit/enrollment-api/internal/pkg/logger"
)

// studentKeyLookup resolves an external student ID to students.id inside the statement.
// An unknown student ID yields NULL.
const studentKeyLookup = "(SELECT id FROM students WHERE student_id = ?)"

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db db.Acquirer
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(database db.Acquirer) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create links a student to a course
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id").
		Values(squirrel.Expr(studentKeyLookup, enrollment.StudentID), enrollment.CourseID).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return dberrors.Wrap(err)
	}

	err = r.db.WithConn(ctx, func(ctx context.Context, q db.Querier) error {
		_, err := q.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		logDBError(err).Str("studentID", stringValue(enrollment.StudentID)).Msg("Error executing create enrollment query")
		return dberrors.Wrap(err)
	}

	return nil
}

// Delete removes the link between a student and a course and reports how many rows matched
func (r *EnrollmentRepository) Delete(ctx context.Context, studentID string, courseID int64) (int64, error) {
	sql, args, err := r.sb.Delete("enrollments").
		Where("student_id = "+studentKeyLookup, studentID).
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete enrollment SQL")
		return 0, dberrors.Wrap(err)
	}

	var affected int64
	err = r.db.WithConn(ctx, func(ctx context.Context, q db.Querier) error {
		tag, err := q.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		logDBError(err).Str("studentID", studentID).Int64("courseID", courseID).Msg("Error executing delete enrollment query")
		return 0, dberrors.Wrap(err)
	}

	return affected, nil
}
