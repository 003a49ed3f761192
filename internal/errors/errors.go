package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a referenced user id does not resolve.
	ErrUserNotFound = errors.New("User not found")
	// ErrCourseNotFound is returned when a referenced course id does not resolve.
	ErrCourseNotFound = errors.New("Course not found")
	// ErrEnrollmentNotFound is returned when an enrollment id does not resolve.
	ErrEnrollmentNotFound = errors.New("Enrollment not found")
	// ErrInstructorNotFound is returned when a course references a missing instructor id.
	ErrInstructorNotFound = errors.New("Instructor not found")
	// ErrAlreadyEnrolled is returned when the (user, course) pair already has an enrollment.
	ErrAlreadyEnrolled = errors.New("User is already enrolled in this course.")
)

// ValidationError reports a field value that fails one of the declared rules.
// It is always recoverable by retrying with corrected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrorResponse is the single-message body used for not-found outcomes.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the list-shaped body used for validation, conflict and
// unexpected failures.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// HTTPError carries a status code plus the messages to render.
type HTTPError struct {
	StatusCode int
	Messages   []string
}

func (e *HTTPError) Error() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	return http.StatusText(e.StatusCode)
}

// Body returns the JSON payload for this error: not-found renders as a single
// "error" field, everything else as an "errors" list.
func (e *HTTPError) Body() interface{} {
	if e.StatusCode == http.StatusNotFound && len(e.Messages) == 1 {
		return ErrorResponse{Error: e.Messages[0]}
	}
	return ErrorsResponse{Errors: e.Messages}
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, messages ...string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Messages: messages}
}

// MapErrorToHTTP maps domain errors to HTTP errors: validation failures to
// 400, unresolved references to 404, the duplicate-enrollment conflict to
// 409, anything else to 500 with the underlying error text attached.
func MapErrorToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return NewHTTPError(http.StatusBadRequest, ve.Message)
	}
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCourseNotFound),
		errors.Is(err, ErrEnrollmentNotFound),
		errors.Is(err, ErrInstructorNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyEnrolled):
		return NewHTTPError(http.StatusConflict, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred.", err.Error())
	}
}
