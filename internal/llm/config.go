package llm

import (
	"fmt"
)

// DefaultAPIURL is the Gemini API base used when no override is configured.
const DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

// Config holds the configuration for the generative backend client.
//
// Environment Variables (resolved by internal/config):
// - GOOGLE_API_KEY: API key for the backend (required)
// - GEMINI_API_URL: API base URL (default: DefaultAPIURL)
type Config struct {
	APIKey string `json:"api_key"`
	APIURL string `json:"api_url"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API key is required")
	}
	if c.APIURL == "" {
		return fmt.Errorf("API URL is required")
	}
	return nil
}

// GetHeaders returns the headers for backend API requests
func (c *Config) GetHeaders() map[string]string {
	return map[string]string{
		"x-goog-api-key": c.APIKey,
		"Content-Type":   "application/json",
	}
}
