package apperrors

import "errors"

// Error codes carried by CustomError. They drive logging only; every failure is
// reported to the client the same way.
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUniqueViolation     = "UNIQUE_VIOLATION"
	CodeForeignKeyViolation = "FOREIGN_KEY_VIOLATION"
	CodeNotNullViolation    = "NOT_NULL_VIOLATION"
	CodeCheckViolation      = "CHECK_VIOLATION"
	CodeDatabase            = "DATABASE_ERROR"
	CodeInternal            = "INTERNAL_ERROR"
)

// ErrOperationFailed is the sentinel wrapped by every CustomError built here
var ErrOperationFailed = errors.New("operation failed")

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrOperationFailed for any CustomError
func (e *CustomError) Is(target error) bool {
	return target == ErrOperationFailed
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewOperationError keeps the raw text of err as the message
func NewOperationError(err error, code string) *CustomError {
	return NewCustomError(err, err.Error()).WithCode(code)
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// CodeOf returns the code of the first CustomError in err's chain
func CodeOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Code != "" {
		return customErr.Code
	}
	return CodeInternal
}
