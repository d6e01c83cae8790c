package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/popey/youtube-chapter-generator/pkg/log"
)

type ErrorType int

const (
	ErrConfig ErrorType = iota
	ErrDownload
	ErrNoContent
	ErrBackend
	ErrFileRead
	ErrFileWrite
	ErrBusy
	ErrUnknown
)

// PipelineError is a typed, catchable error raised by the pipeline. The
// orchestrator is the only layer that turns one into a process exit.
type PipelineError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func NewError(errorType ErrorType, message string) *PipelineError {
	return &PipelineError{
		Type:    errorType,
		Message: message,
	}
}

func NewErrorWithCause(errorType ErrorType, message string, cause error) *PipelineError {
	return &PipelineError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func (e *PipelineError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("[%s] %s", e.Type.String(), e.Message))

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause: %v", e.Cause))
	}

	return strings.Join(parts, " | ")
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

func (t ErrorType) String() string {
	switch t {
	case ErrConfig:
		return "Config"
	case ErrDownload:
		return "Download"
	case ErrNoContent:
		return "NoContent"
	case ErrBackend:
		return "Backend"
	case ErrFileRead:
		return "FileRead"
	case ErrFileWrite:
		return "FileWrite"
	case ErrBusy:
		return "Busy"
	default:
		return "Unknown"
	}
}

type ErrorHandler interface {
	Handle(err error) bool
	GetAdvice(err *PipelineError) string
}

type DefaultErrorHandler struct{}

func NewDefaultErrorHandler() ErrorHandler {
	return &DefaultErrorHandler{}
}

func (h *DefaultErrorHandler) Handle(err error) bool {
	var pipeErr *PipelineError
	if !errors.As(err, &pipeErr) {
		log.Error("Unknown error: %v", err)
		return false
	}

	advice := h.GetAdvice(pipeErr)
	log.Error("Error detail: %v\nadvice: %s", err, advice)

	return true
}

// GetAdvice returns a human-readable checklist of likely causes
func (h *DefaultErrorHandler) GetAdvice(err *PipelineError) string {
	switch err.Type {
	case ErrConfig:
		return "Set GOOGLE_API_KEY in a .env file or export it in your shell"
	case ErrDownload:
		return "Check that yt-dlp is installed, the video URL is correct, and the video is accessible"
	case ErrNoContent:
		return "At least one of subtitles or live chat is required to generate chapter markers; this video appears to have neither"
	case ErrBackend:
		return "Possible causes:\n" +
			"- Invalid API key\n" +
			"- Invalid model name or model not available\n" +
			"- Rate limit or quota exceeded\n" +
			"- Network connectivity issues\n" +
			"Please check your API key and model availability."
	case ErrFileRead:
		return "Check that the file exists and has read permissions"
	case ErrFileWrite:
		return "Check that the working directory exists and has write permissions"
	case ErrBusy:
		return "Another run is already using this working directory; wait for it to finish or use a different --workdir"
	default:
		return "Review the detailed error and check the relevant configuration and files"
	}
}

func IsErrorType(err error, errorType ErrorType) bool {
	var pipeErr *PipelineError
	if errors.As(err, &pipeErr) {
		return pipeErr.Type == errorType
	}
	return false
}
