package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       ErrorCode
		httpStatus int
		retryable  bool
	}{
		{"missing input", MissingInput(), ErrCodeMissingInput, http.StatusBadRequest, false},
		{"unsupported type", UnsupportedType(".wav", ".mp3"), ErrCodeUnsupportedType, http.StatusBadRequest, false},
		{"not found", NotFound("video", "v1"), ErrCodeNotFound, http.StatusNotFound, false},
		{"transcript not ready", TranscriptNotReady("v1"), ErrCodeTranscriptNotReady, http.StatusBadRequest, false},
		{"transcription failed", TranscriptionFailed(errors.New("x")), ErrCodeTranscriptionFailed, http.StatusBadGateway, true},
		{"completion failed", CompletionFailed(errors.New("x")), ErrCodeCompletionFailed, http.StatusBadGateway, true},
		{"validation", Validation("bad"), ErrCodeInvalidInput, http.StatusBadRequest, false},
		{"internal", Internal(errors.New("x")), ErrCodeInternal, http.StatusInternalServerError, false},
		{"database", DatabaseError(errors.New("x")), ErrCodeDatabaseError, http.StatusInternalServerError, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("code = %q, want %q", tc.err.Code, tc.code)
			}
			if tc.err.HTTPStatus != tc.httpStatus {
				t.Errorf("status = %d, want %d", tc.err.HTTPStatus, tc.httpStatus)
			}
			if tc.err.Retryable != tc.retryable {
				t.Errorf("retryable = %v, want %v", tc.err.Retryable, tc.retryable)
			}
		})
	}
}

func TestUnwrapAndErrorsAs(t *testing.T) {
	cause := errors.New("socket closed")
	err := TranscriptionFailed(cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}

	wrapped := fmt.Errorf("stage failed: %w", err)
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to find the AppError through wrapping")
	}
	if appErr.Code != ErrCodeTranscriptionFailed {
		t.Errorf("code = %q", appErr.Code)
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Error("expected plain errors not to convert")
	}
}

func TestToResponseExcludesCause(t *testing.T) {
	err := TranscriptionFailed(errors.New("secret internals")).WithDetail("id", "v1")
	resp := err.ToResponse()

	if resp.Error.Code != ErrCodeTranscriptionFailed {
		t.Errorf("code = %q", resp.Error.Code)
	}
	if resp.Error.Details["id"] != "v1" {
		t.Errorf("details = %v", resp.Error.Details)
	}
	if !resp.Error.Retryable {
		t.Error("expected retryable in the envelope")
	}
}

func TestWithDetailAccumulates(t *testing.T) {
	err := Validation("bad").WithDetail("field", "temperature").WithDetail("rule", "lte")
	if err.Details["field"] != "temperature" || err.Details["rule"] != "lte" {
		t.Errorf("details = %v", err.Details)
	}
}
