package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64  `json:"id" db:"id"`                 // Internal key, referenced by enrollments
	StudentID string `json:"student_id" db:"student_id"` // Externally visible identifier
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Email     string `json:"email" db:"email"`
	Program   string `json:"program" db:"program"`

	// Courses joined through enrollments; empty, never null
	EnrolledCourses []EnrolledCourse `json:"enrolled_courses"`
}

// EnrolledCourse is the course summary embedded in a student listing
type EnrolledCourse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// StudentRegistration holds the columns written on registration.
// Nil fields are stored as NULL and left for the schema to reject.
type StudentRegistration struct {
	StudentID *string
	FirstName *string
	LastName  *string
	Email     *string
	Program   *string
}
