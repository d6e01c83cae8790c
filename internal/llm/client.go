package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is a generative-text backend client speaking the Gemini REST API.
// Safe for concurrent use.
type Client struct {
	config     *Config
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new backend client with the given configuration.
//
// Example:
//
//	client, err := llm.NewClient(&llm.Config{
//		APIKey: os.Getenv("GOOGLE_API_KEY"),
//		APIURL: llm.DefaultAPIURL,
//	})
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Client{
		config:  config,
		baseURL: strings.TrimRight(config.APIURL, "/"),
		// Generation over very large prompts can run for minutes, so the
		// client carries no timeout; the call runs to completion.
		httpClient: &http.Client{},
	}, nil
}

// GenerateContent submits one prompt to the given model and returns the
// generated text.
//
// modelID is the backend's full model identifier (e.g.
// "models/gemini-2.5-flash-preview-04-17"), not the short selector name.
func (c *Client) GenerateContent(ctx context.Context, modelID, promptText string) (string, error) {
	request := GenerateRequest{
		Contents: []Content{
			{Parts: []Part{{Text: promptText}}},
		},
	}

	response, err := c.makeRequest(ctx, "/"+modelID+":generateContent", request)
	if err != nil {
		return "", fmt.Errorf("content generation failed: %w", err)
	}

	if len(response.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var b strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}

	return b.String(), nil
}

// makeRequest posts payload to the backend and decodes the response
func (c *Client) makeRequest(ctx context.Context, path string, payload interface{}) (*GenerateResponse, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.config.GetHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var generateResponse GenerateResponse
	if err := json.Unmarshal(responseBody, &generateResponse); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if generateResponse.Error != nil && generateResponse.Error.Message != "" {
		return &generateResponse, generateResponse.Error
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &generateResponse, fmt.Errorf("API request failed with status %d: %s",
			resp.StatusCode, string(responseBody))
	}

	return &generateResponse, nil
}
