// Package auditerr defines the error taxonomy shared by the recording,
// transcription, summarization, chat and report components, plus the HTTP
// status each code maps to at the API boundary.
package auditerr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Code identifies one failure class.
type Code string

const (
	// ALREADY_RECORDING a start was requested while a session is active
	ALREADY_RECORDING Code = "ALREADY_RECORDING"

	// NOT_RECORDING a stop was requested with no active session
	NOT_RECORDING Code = "NOT_RECORDING"

	// CAPTURE_FAILED the audio capture device could not be opened or driven
	CAPTURE_FAILED Code = "CAPTURE_FAILED"

	// TRANSCRIPTION_FAILED the remote speech service call failed
	TRANSCRIPTION_FAILED Code = "TRANSCRIPTION_FAILED"

	// SUMMARIZATION_FAILED the remote text-generation call for a summary failed
	SUMMARIZATION_FAILED Code = "SUMMARIZATION_FAILED"

	// CHAT_FAILED the remote text-generation call for a chat answer failed
	CHAT_FAILED Code = "CHAT_FAILED"

	// NOT_FOUND a history or file lookup matched nothing
	NOT_FOUND Code = "NOT_FOUND"

	// VALIDATION_FAILED a request carried a bad language code or missing field
	VALIDATION_FAILED Code = "VALIDATION_FAILED"

	// REPORT_GENERATION_FAILED PDF rendering or the table width check failed
	REPORT_GENERATION_FAILED Code = "REPORT_GENERATION_FAILED"
)

// AuditError carries a code, a human-readable message and the wrapped cause.
type AuditError struct {
	Code      Code      `json:"code"`
	Message   string    `json:"message"`
	Cause     error     `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *AuditError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AuditError) Unwrap() error {
	return e.Cause
}

// New creates an AuditError with the given code, message and cause.
func New(code Code, message string, cause error) *AuditError {
	return &AuditError{
		Code:      code,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

func NewAlreadyRecording() *AuditError {
	return New(ALREADY_RECORDING, "already recording", nil)
}

func NewNotRecording() *AuditError {
	return New(NOT_RECORDING, "not recording", nil)
}

func NewCaptureError(cause error) *AuditError {
	return New(CAPTURE_FAILED, "audio capture failed", cause)
}

func NewTranscriptionError(cause error) *AuditError {
	return New(TRANSCRIPTION_FAILED, "transcription failed", cause)
}

func NewSummarizationError(cause error) *AuditError {
	return New(SUMMARIZATION_FAILED, "summarization failed", cause)
}

func NewChatError(cause error) *AuditError {
	return New(CHAT_FAILED, "chat completion failed", cause)
}

func NewNotFound(resource string) *AuditError {
	return New(NOT_FOUND, resource+" not found", nil)
}

func NewValidationError(message string) *AuditError {
	return New(VALIDATION_FAILED, message, nil)
}

func NewReportError(cause error) *AuditError {
	return New(REPORT_GENERATION_FAILED, "report generation failed", cause)
}

// HTTPStatus maps an error code to its response status. Unknown errors map
// to 500.
func HTTPStatus(err error) int {
	var ae *AuditError
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Code {
	case ALREADY_RECORDING, NOT_RECORDING, VALIDATION_FAILED:
		return http.StatusBadRequest
	case NOT_FOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf extracts the error code, or empty when err is not an AuditError.
func CodeOf(err error) Code {
	var ae *AuditError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
