package apierror

import (
	"errors"
	"net/http"
)

// ApiError is the normalized error every operation produces on failure.
// StatusCode maps directly to the HTTP status; Data carries optional
// structured detail such as a field violation list.
type ApiError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

func (e *ApiError) Error() string {
	return e.Message
}

func New(statusCode int, message string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// Validation reports a failed request validation. Data holds the
// violation list returned by the validation rules.
func Validation(data any) *ApiError {
	return &ApiError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "Validation failed",
		Data:       data,
	}
}

func NotFound(message string) *ApiError {
	return &ApiError{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

// Internal wraps an unexpected fault, preserving the underlying message.
func Internal(err error) *ApiError {
	return &ApiError{
		StatusCode: http.StatusInternalServerError,
		Message:    err.Error(),
	}
}

// From normalizes any error into an ApiError. Errors without an attached
// status default to 500.
func From(err error) *ApiError {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal(err)
}
