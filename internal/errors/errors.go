package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrActivityNotFound is returned when no activity has the requested name.
	ErrActivityNotFound = errors.New("Activity not found")
	// ErrAlreadySignedUp is returned when the student already holds an enrollment.
	ErrAlreadySignedUp = errors.New("Student is already signed up")
	// ErrNotSignedUp is returned when unregistering a student with no enrollment.
	ErrNotSignedUp = errors.New("Student is not signed up for this activity")
	// ErrActivityFull is returned when the activity reached max_participants.
	ErrActivityFull = errors.New("Activity is full")
)

// Kind groups domain errors the way callers react to them.
type Kind string

const (
	KindNotFound         Kind = "NotFound"
	KindInvalidState     Kind = "InvalidState"
	KindCapacityExceeded Kind = "CapacityExceeded"
	KindInternal         Kind = "Internal"
)

// KindOf classifies err. Anything outside the taxonomy is Internal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadySignedUp), errors.Is(err, ErrNotSignedUp):
		return KindInvalidState
	case errors.Is(err, ErrActivityFull):
		return KindCapacityExceeded
	default:
		return KindInternal
	}
}

// StatusCode is the HTTP status every error of kind k is answered with.
func (k Kind) StatusCode() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidState, KindCapacityExceeded:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// domainErrors pairs each sentinel with its machine readable code.
var domainErrors = []struct {
	err  error
	code string
}{
	{ErrActivityNotFound, "ACTIVITY_NOT_FOUND"},
	{ErrAlreadySignedUp, "ALREADY_SIGNED_UP"},
	{ErrNotSignedUp, "NOT_SIGNED_UP"},
	{ErrActivityFull, "ACTIVITY_FULL"},
}

// ErrorResponse represents a standardized error response.
// Detail carries the human readable message the frontend displays.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Detail: e.Message,
		Code:   e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The status follows the
// error's Kind; anything outside the taxonomy becomes a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	for _, d := range domainErrors {
		if errors.Is(err, d.err) {
			return NewHTTPError(KindOf(d.err).StatusCode(), d.err.Error(), d.code)
		}
	}
	return NewHTTPError(KindInternal.StatusCode(), "internal server error", "INTERNAL_ERROR")
}
