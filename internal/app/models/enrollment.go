package models

// Enrollment links a student, by external student ID, to a course.
type Enrollment struct {
	StudentID *string
	CourseID  *int64
}
