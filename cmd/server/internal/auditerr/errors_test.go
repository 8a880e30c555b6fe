package auditerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTranscriptionError(cause)

	assert.Contains(t, err.Error(), "TRANSCRIPTION_FAILED")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorWithoutCause(t *testing.T) {
	err := NewAlreadyRecording()
	assert.Equal(t, "[ALREADY_RECORDING] already recording", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{NewAlreadyRecording(), http.StatusBadRequest},
		{NewNotRecording(), http.StatusBadRequest},
		{NewValidationError("language must be 'en' or 'fr'"), http.StatusBadRequest},
		{NewNotFound("transcription"), http.StatusNotFound},
		{NewTranscriptionError(errors.New("x")), http.StatusInternalServerError},
		{NewSummarizationError(errors.New("x")), http.StatusInternalServerError},
		{NewChatError(errors.New("x")), http.StatusInternalServerError},
		{NewReportError(errors.New("x")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.err), "error: %v", tt.err)
	}
}

func TestHTTPStatusWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFound("transcription"))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
	assert.Equal(t, NOT_FOUND, CodeOf(wrapped))
}
