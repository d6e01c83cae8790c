package llm

import (
	"fmt"
)

// Wire types for the generateContent endpoint.

// Part is one fragment of model input or output text
type Part struct {
	Text string `json:"text"`
}

// Content is an ordered list of parts attributed to a role
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// GenerateRequest is the request body for a generateContent call
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Candidate is one generated completion
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// GenerateResponse is the response body of a generateContent call.
// The Error field is populated instead of Candidates when the call failed.
type GenerateResponse struct {
	Candidates   []Candidate `json:"candidates"`
	ModelVersion string      `json:"modelVersion,omitempty"`
	Error        *APIError   `json:"error,omitempty"`
}

// APIError is the error envelope returned by the backend
//
// Code: numeric error code (mirrors the HTTP status)
// Message: human-readable diagnostic
// Status: canonical status name, e.g. "INVALID_ARGUMENT"
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend API error: %s (status: %s, code: %d)", e.Message, e.Status, e.Code)
}
