package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineErrorMessage(t *testing.T) {
	err := NewError(ErrNoContent, "nothing to summarize")
	assert.Equal(t, "[NoContent] nothing to summarize", err.Error())

	wrapped := NewErrorWithCause(ErrBackend, "generative backend call failed", errors.New("quota exceeded"))
	assert.Contains(t, wrapped.Error(), "[Backend]")
	assert.Contains(t, wrapped.Error(), "cause: quota exceeded")
}

func TestPipelineErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewErrorWithCause(ErrDownload, "fetch failed", cause)
	assert.ErrorIs(t, err, cause)
}

func TestIsErrorType(t *testing.T) {
	err := NewError(ErrConfig, "missing key")
	assert.True(t, IsErrorType(err, ErrConfig))
	assert.False(t, IsErrorType(err, ErrBackend))
	assert.False(t, IsErrorType(errors.New("plain"), ErrConfig))

	// works through wrapping
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsErrorType(wrapped, ErrConfig))
}

func TestBackendAdviceListsLikelyCauses(t *testing.T) {
	h := NewDefaultErrorHandler()
	advice := h.GetAdvice(NewError(ErrBackend, "call failed"))
	assert.Contains(t, advice, "Invalid API key")
	assert.Contains(t, advice, "Invalid model name")
	assert.Contains(t, advice, "Rate limit or quota exceeded")
	assert.Contains(t, advice, "Network connectivity issues")
}

func TestHandleReportsTypedErrors(t *testing.T) {
	h := NewDefaultErrorHandler()
	assert.True(t, h.Handle(NewError(ErrNoContent, "nothing to summarize")))
	assert.False(t, h.Handle(errors.New("untyped")))
}
