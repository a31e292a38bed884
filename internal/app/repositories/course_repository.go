package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/enrollment-api/internal/app/models"
	"github.com/yigit/enrollment-api/internal/db"
	"github.com/yigit/enrollment-api/internal/pkg/dberrors"
	"github.com/yigit/enrollment-api/internal/pkg/logger"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db db.Acquirer
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(database db.Acquirer) *CourseRepository {
	return &CourseRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all courses in storage order
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "name", "code").
		From("courses").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, dberrors.Wrap(err)
	}

	courses := make([]*models.Course, 0)
	err = r.db.WithConn(ctx, func(ctx context.Context, q db.Querier) error {
		rows, err := q.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var course models.Course
			if err := rows.Scan(&course.ID, &course.Name, &course.Code); err != nil {
				return err
			}
			courses = append(courses, &course)
		}

		return rows.Err()
	})
	if err != nil {
		logDBError(err).Msg("Error listing courses")
		return nil, dberrors.Wrap(err)
	}

	return courses, nil
}
