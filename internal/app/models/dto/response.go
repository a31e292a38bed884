package dto

// Messages returned on success
const (
	MsgStudentRegistered = "Student registered successfully"
	MsgEnrollmentCreated = "Enrollment successful"
	MsgEnrollmentRemoved = "De-enrollment successful"
)

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
