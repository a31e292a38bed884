package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/enrollment-api/internal/app/models"
	"github.com/yigit/enrollment-api/internal/db"
	"github.com/yigit/enrollment-api/internal/pkg/dberrors"
	"github.com/yigit/enrollment-api/internal/pkg/logger"
)

// enrolledCoursesColumn aggregates the joined courses of one student into a JSON array.
// Students without enrollments get '[]' instead of a single all-null element.
const enrolledCoursesColumn = `COALESCE(json_agg(json_build_object('id', c.id, 'name', c.name, 'code', c.code) ORDER BY c.id) FILTER (WHERE c.id IS NOT NULL), '[]') AS enrolled_courses`

// StudentRepository handles student database operations
type StudentRepository struct {
	db db.Acquirer
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database db.Acquirer) *StudentRepository {
	return &StudentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a student and returns the generated id
func (r *StudentRepository) Create(ctx context.Context, student *models.StudentRegistration) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("student_id", "first_name", "last_name", "email", "program").
		Values(student.StudentID, student.FirstName, student.LastName, student.Email, student.Program).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, dberrors.Wrap(err)
	}

	var id int64
	err = r.db.WithConn(ctx, func(ctx context.Context, q db.Querier) error {
		return q.QueryRow(ctx, sql, args...).Scan(&id)
	})
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			logger.Warn().Str("studentID", stringValue(student.StudentID)).Msg("Attempted to create student with duplicate student ID")
			return 0, dberrors.Wrap(err)
		}
		logDBError(err).Str("studentID", stringValue(student.StudentID)).Msg("Error executing create student query")
		return 0, dberrors.Wrap(err)
	}

	logger.Info().Int64("id", id).Str("studentID", stringValue(student.StudentID)).Msg("Student created successfully")
	return id, nil
}

// ListWithCourses returns every student together with the courses they are enrolled in
func (r *StudentRepository) ListWithCourses(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.student_id", "s.first_name", "s.last_name", "s.email", "s.program",
		enrolledCoursesColumn,
	).
		From("students s").
		LeftJoin("enrollments e ON s.id = e.student_id").
		LeftJoin("courses c ON e.course_id = c.id").
		GroupBy("s.id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, dberrors.Wrap(err)
	}

	students := make([]*models.Student, 0)
	err = r.db.WithConn(ctx, func(ctx context.Context, q db.Querier) error {
		rows, err := q.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var student models.Student
			var courses []byte
			if err := rows.Scan(
				&student.ID,
				&student.StudentID,
				&student.FirstName,
				&student.LastName,
				&student.Email,
				&student.Program,
				&courses,
			); err != nil {
				return err
			}

			student.EnrolledCourses = make([]models.EnrolledCourse, 0)
			if err := json.Unmarshal(courses, &student.EnrolledCourses); err != nil {
				return err
			}
			students = append(students, &student)
		}

		return rows.Err()
	})
	if err != nil {
		logDBError(err).Msg("Error listing students")
		return nil, dberrors.Wrap(err)
	}

	return students, nil
}
