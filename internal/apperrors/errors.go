// Package apperrors provides unified error handling for the pipeline service.
// It implements structured error types with error codes, HTTP status mapping,
// and retryable detection.
package apperrors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if resubmitting the request can succeed.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Pipeline error constructors ---

// MissingInput creates a new AppError for an upload request without a file part.
func MissingInput() *AppError {
	return &AppError{
		Code: ErrCodeMissingInput, Message: "Missing file input.",
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// UnsupportedType creates a new AppError for an upload with a rejected extension.
func UnsupportedType(extension, accepted string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedType, Message: fmt.Sprintf("Invalid input type. Please upload a %s file.", accepted),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"extension": extension, "accepted": accepted},
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound, Retryable: false, Details: details,
	}
}

// TranscriptNotReady creates a new AppError for a completion requested before
// the record's transcription was generated.
func TranscriptNotReady(videoID string) *AppError {
	return &AppError{
		Code: ErrCodeTranscriptNotReady, Message: "Video transcription was not generated yet.",
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"id": videoID},
	}
}

// TranscriptionFailed creates a new AppError for a failed speech-to-text call.
func TranscriptionFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeTranscriptionFailed, Message: "The transcription service encountered an error. Please try again.",
		HTTPStatus: http.StatusBadGateway, Retryable: true, Cause: cause,
	}
}

// CompletionFailed creates a new AppError for a failed completion call.
func CompletionFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeCompletionFailed, Message: "The completion service encountered an error. Please try again.",
		HTTPStatus: http.StatusBadGateway, Retryable: true, Cause: cause,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// Internal creates a new AppError for an internal server error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// DatabaseError creates a new AppError for a database error.
func DatabaseError(cause error) *AppError {
	return &AppError{
		Code: ErrCodeDatabaseError, Message: "A database error occurred. Please try again.",
		HTTPStatus: http.StatusInternalServerError, Retryable: true, Cause: cause,
	}
}
