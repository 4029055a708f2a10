package errors

import "fmt"

// HTTPError is a domain error already translated for the HTTP layer.
// Code is the stable, client-facing error code; StatusCode is the HTTP status.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode, code int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// Stable codes shared by every domain.
const (
	CodeInternal          = 1
	CodeStorageContention = 100001
	CodeRateLimited       = 100002
	CodeBadRequest        = 100003
	CodeUnauthorized      = 100004
)

var (
	ErrInternalServerError = NewHTTPError(500, CodeInternal, "internal server error")
	ErrStorageContention   = NewHTTPError(503, CodeStorageContention, "storage is busy, try again")
	ErrRateLimited         = NewHTTPError(429, CodeRateLimited, "too many requests, slow down")
	ErrUnauthorized        = NewHTTPError(401, CodeUnauthorized, "unauthorized")
)

// NewBadRequest wraps a validation/binding error.
func NewBadRequest(err error) *HTTPError {
	return NewHTTPError(400, CodeBadRequest, err.Error())
}
