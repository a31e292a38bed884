package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/enrollment-api/internal/app/controllers"
	"github.com/yigit/enrollment-api/internal/app/models"
	"github.com/yigit/enrollment-api/internal/app/services"
	"github.com/yigit/enrollment-api/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memDB mimics the constraints of the enrollment schema
type memDB struct {
	mu          sync.Mutex
	nextID      int64
	students    []*models.Student
	courses     []*models.Course
	enrollments map[[2]int64]bool
}

func newMemDB(courses ...*models.Course) *memDB {
	return &memDB{courses: courses, enrollments: map[[2]int64]bool{}}
}

func (m *memDB) Ping(ctx context.Context) error { return nil }

func (m *memDB) studentKey(studentID *string) (int64, bool) {
	if studentID == nil {
		return 0, false
	}
	for _, s := range m.students {
		if s.StudentID == *studentID {
			return s.ID, true
		}
	}
	return 0, false
}

type memStudents struct{ *memDB }

func (m memStudents) Create(ctx context.Context, r *models.StudentRegistration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, field := range []*string{r.StudentID, r.FirstName, r.LastName, r.Email, r.Program} {
		if field == nil {
			return 0, errors.New("null value violates not-null constraint")
		}
	}
	if _, exists := m.studentKey(r.StudentID); exists {
		return 0, errors.New(`duplicate key value violates unique constraint "students_student_id_key"`)
	}

	m.nextID++
	m.students = append(m.students, &models.Student{
		ID: m.nextID, StudentID: *r.StudentID, FirstName: *r.FirstName,
		LastName: *r.LastName, Email: *r.Email, Program: *r.Program,
	})
	return m.nextID, nil
}

func (m memStudents) ListWithCourses(ctx context.Context) ([]*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*models.Student, 0, len(m.students))
	for _, s := range m.students {
		student := *s
		student.EnrolledCourses = make([]models.EnrolledCourse, 0)
		for _, c := range m.courses {
			if m.enrollments[[2]int64{s.ID, c.ID}] {
				student.EnrolledCourses = append(student.EnrolledCourses, models.EnrolledCourse{ID: c.ID, Name: c.Name, Code: c.Code})
			}
		}
		sort.Slice(student.EnrolledCourses, func(i, j int) bool { return student.EnrolledCourses[i].ID < student.EnrolledCourses[j].ID })
		out = append(out, &student)
	}
	return out, nil
}

type memCourses struct{ *memDB }

func (m memCourses) GetAll(ctx context.Context) ([]*models.Course, error) {
	return append(make([]*models.Course, 0), m.courses...), nil
}

type memEnrollments struct{ *memDB }

func (m memEnrollments) Create(ctx context.Context, e *models.Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key, ok := m.studentKey(e.StudentID)
	if !ok || e.CourseID == nil {
		return errors.New(`null value in column "student_id" violates not-null constraint`)
	}
	found := false
	for _, c := range m.courses {
		found = found || c.ID == *e.CourseID
	}
	if !found {
		return errors.New(`insert or update on table "enrollments" violates foreign key constraint`)
	}
	m.enrollments[[2]int64{key, *e.CourseID}] = true
	return nil
}

func (m memEnrollments) Delete(ctx context.Context, studentID string, courseID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key, ok := m.studentKey(&studentID)
	if !ok || !m.enrollments[[2]int64{key, courseID}] {
		return 0, nil
	}
	delete(m.enrollments, [2]int64{key, courseID})
	return 1, nil
}

func newTestRouter(store *memDB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(zerolog.Nop()), middleware.CORS(nil, true))

	SetupRouter(router,
		controllers.NewStudentController(services.NewStudentService(memStudents{store})),
		controllers.NewCourseController(services.NewCourseService(memCourses{store})),
		controllers.NewEnrollmentController(services.NewEnrollmentService(memEnrollments{store})),
		controllers.NewHealthController(services.NewHealthService(store)),
	)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEnrollmentLifecycle(t *testing.T) {
	router := newTestRouter(newMemDB(
		&models.Course{ID: 10, Name: "Algorithms", Code: "CS101"},
		&models.Course{ID: 11, Name: "Circuits", Code: "EE101"},
	))

	w := do(router, http.MethodPost, "/api/students/register",
		`{"studentId":"S1","firstName":"Ada","lastName":"L","email":"a@x.io","program":"CS"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"message":"Student registered successfully"}`, w.Body.String())

	w = do(router, http.MethodPost, "/api/enrollments", `{"studentId":"S1","courseId":10}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Enrollment successful"}`, w.Body.String())

	w = do(router, http.MethodGet, "/api/students", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"student_id":"S1","first_name":"Ada","last_name":"L","email":"a@x.io","program":"CS",
		"enrolled_courses":[{"id":10,"name":"Algorithms","code":"CS101"}]}]`, w.Body.String())

	w = do(router, http.MethodPost, "/api/enrollments", `{"studentId":"S1","courseId":11}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/students", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"student_id":"S1","first_name":"Ada","last_name":"L","email":"a@x.io","program":"CS",
		"enrolled_courses":[{"id":10,"name":"Algorithms","code":"CS101"},{"id":11,"name":"Circuits","code":"EE101"}]}]`, w.Body.String())

	w = do(router, http.MethodDelete, "/api/enrollments/S1/10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"De-enrollment successful"}`, w.Body.String())

	w = do(router, http.MethodDelete, "/api/enrollments/S1/11", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/students", "")
	assert.JSONEq(t, `[{"id":1,"student_id":"S1","first_name":"Ada","last_name":"L","email":"a@x.io","program":"CS",
		"enrolled_courses":[]}]`, w.Body.String())

	// removing an enrollment that no longer exists still succeeds
	w = do(router, http.MethodDelete, "/api/enrollments/S1/10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"De-enrollment successful"}`, w.Body.String())
}

func TestFailuresAreReportedAs500(t *testing.T) {
	router := newTestRouter(newMemDB(&models.Course{ID: 10, Name: "Algorithms", Code: "CS101"}))

	body := `{"studentId":"S1","firstName":"Ada","lastName":"L","email":"a@x.io","program":"CS"}`
	assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/api/students/register", body).Code)

	w := do(router, http.MethodPost, "/api/students/register", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"duplicate key value violates unique constraint \"students_student_id_key\""}`, w.Body.String())

	w = do(router, http.MethodPost, "/api/enrollments", `{"studentId":"S1","courseId":999}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "foreign key")

	w = do(router, http.MethodPost, "/api/enrollments", `{"studentId":"S9","courseId":10}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "not-null")
}

func TestListsStartEmpty(t *testing.T) {
	router := newTestRouter(newMemDB())

	w := do(router, http.MethodGet, "/api/courses", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(router, http.MethodGet, "/api/students", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHealthAndUnknownRoutes(t *testing.T) {
	router := newTestRouter(newMemDB())

	w := do(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/enrollments", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPut, "/api/students", "").Code)
}
