package apperrors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Ingestion errors
const (
	// ErrCodeMissingInput indicates the multipart request carried no file part.
	ErrCodeMissingInput ErrorCode = "MISSING_INPUT"
	// ErrCodeUnsupportedType indicates the uploaded file has a rejected extension.
	ErrCodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeTranscriptNotReady indicates a completion was requested before
	// the record's transcription exists.
	ErrCodeTranscriptNotReady ErrorCode = "TRANSCRIPT_NOT_READY"
)

// Collaborator errors
const (
	// ErrCodeTranscriptionFailed indicates the speech-to-text call failed.
	ErrCodeTranscriptionFailed ErrorCode = "TRANSCRIPTION_FAILED"
	// ErrCodeCompletionFailed indicates the completion call failed.
	ErrCodeCompletionFailed ErrorCode = "COMPLETION_FAILED"
)

// Validation and internal errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeDatabaseError indicates a database error.
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTranscriptionFailed: true,
	ErrCodeCompletionFailed:    true,
	ErrCodeDatabaseError:       true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// Nothing in this service retries automatically; the flag only tells the
// caller whether resubmitting the same request can succeed.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
