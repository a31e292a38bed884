package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/enrollment-api/internal/app/models"
	"github.com/yigit/enrollment-api/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	created  []*models.StudentRegistration
	students []*models.Student
	err      error
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.StudentRegistration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, student)
	return int64(len(f.created)), nil
}

func (f *fakeStudentStore) ListWithCourses(ctx context.Context) ([]*models.Student, error) {
	return f.students, f.err
}

type fakeCourseStore struct {
	courses []*models.Course
	err     error
}

func (f *fakeCourseStore) GetAll(ctx context.Context) ([]*models.Course, error) {
	return f.courses, f.err
}

type fakeEnrollmentStore struct {
	created  []*models.Enrollment
	affected int64
	err      error
	deleted  []string
}

func (f *fakeEnrollmentStore) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, enrollment)
	return nil
}

func (f *fakeEnrollmentStore) Delete(ctx context.Context, studentID string, courseID int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deleted = append(f.deleted, studentID)
	return f.affected, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func strPtr(s string) *string { return &s }

func TestStudentService_RegisterStudent(t *testing.T) {
	store := &fakeStudentStore{}
	svc := NewStudentService(store)

	id, err := svc.RegisterStudent(context.Background(), &models.StudentRegistration{StudentID: strPtr("S1")})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, store.created, 1)
	assert.Equal(t, "S1", *store.created[0].StudentID)
}

func TestStudentService_PropagatesStoreError(t *testing.T) {
	failure := apperrors.NewOperationError(errors.New("duplicate key"), apperrors.CodeUniqueViolation)
	svc := NewStudentService(&fakeStudentStore{err: failure})

	_, err := svc.RegisterStudent(context.Background(), &models.StudentRegistration{})
	assert.Same(t, failure, err)

	_, err = svc.GetStudentsWithCourses(context.Background())
	assert.Same(t, failure, err)
}

func TestCourseService_GetAllCourses(t *testing.T) {
	courses := []*models.Course{{ID: 10, Name: "Algorithms", Code: "CS101"}}
	svc := NewCourseService(&fakeCourseStore{courses: courses})

	got, err := svc.GetAllCourses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, courses, got)
}

func TestEnrollmentService_UnenrollSucceedsWithoutMatch(t *testing.T) {
	store := &fakeEnrollmentStore{affected: 0}
	svc := NewEnrollmentService(store)

	err := svc.Unenroll(context.Background(), "S1", 999)

	assert.NoError(t, err)
	assert.Equal(t, []string{"S1"}, store.deleted)
}

func TestEnrollmentService_Errors(t *testing.T) {
	failure := errors.New("insert or update on table \"enrollments\" violates foreign key constraint")
	svc := NewEnrollmentService(&fakeEnrollmentStore{err: failure})

	assert.ErrorIs(t, svc.Enroll(context.Background(), &models.Enrollment{}), failure)
	assert.ErrorIs(t, svc.Unenroll(context.Background(), "S1", 10), failure)
}

func TestHealthService_Check(t *testing.T) {
	assert.NoError(t, NewHealthService(fakePinger{}).Check(context.Background()))

	err := NewHealthService(fakePinger{err: errors.New("connection refused")}).Check(context.Background())
	assert.EqualError(t, err, "connection refused")
	assert.ErrorIs(t, err, apperrors.ErrOperationFailed)
}
