package config

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/language"

	"github.com/popey/youtube-chapter-generator/internal/llm"
)

// DefaultModel is the model selector used when none is given.
const DefaultModel = "gemini-2.5-flash"

// Models maps the short selector names accepted on the command line to the
// backend's full model identifiers.
var Models = map[string]string{
	"gemini-2.5-pro-exp": "models/gemini-2.5-pro-exp-03-25",
	"gemini-2.5-flash":   "models/gemini-2.5-flash-preview-04-17",
}

// ResolveModel maps a selector name to its backend identifier. Unrecognized
// names fall back to the default model's identifier.
func ResolveModel(name string) string {
	if id, ok := Models[name]; ok {
		return id
	}
	return Models[DefaultModel]
}

// ModelNames returns the accepted selector names, sorted.
func ModelNames() []string {
	names := make([]string, 0, len(Models))
	for name := range Models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config holds all application configuration
//
// Environment Variables:
// - GOOGLE_API_KEY: API key for the generative backend (required)
// - GEMINI_API_URL: backend API base URL (default: the public Gemini endpoint)
// - SUBTITLE_LANG: subtitle language requested from the downloader (default: en)
type Config struct {
	// LLM holds the generative backend configuration
	LLM llm.Config `json:"llm"`

	// Subtitle holds the subtitle fetching configuration
	Subtitle SubtitleConfig `json:"subtitle"`
}

// SubtitleConfig holds the configuration for subtitle fetching
type SubtitleConfig struct {
	Language language.Tag `json:"language"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// NewFromEnv creates a new Config instance with values from environment
// variables and options
func NewFromEnv(opts ...Option) (*Config, error) {
	lang, err := language.Parse(getEnvString("SUBTITLE_LANG", "en"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUBTITLE_LANG: %w", err)
	}

	config := &Config{
		LLM: llm.Config{
			APIKey: getEnvString("GOOGLE_API_KEY", ""),
			APIURL: getEnvString("GEMINI_API_URL", llm.DefaultAPIURL),
		},
		Subtitle: SubtitleConfig{
			Language: lang,
		},
	}

	// Apply custom options
	for _, opt := range opts {
		opt(config)
	}

	// Validate required configuration
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks if all required configuration is properly set
func (c *Config) validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY environment variable not set")
	}
	return nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
