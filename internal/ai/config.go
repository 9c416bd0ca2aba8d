package ai

import (
	"errors"

	"github.com/spf13/viper"
)

var ErrMissingAPIKey = errors.New("ai: api key is not configured")

const (
	defaultProvider = "openai"
	defaultModel    = "gpt-4o-mini"
	defaultBaseURL  = "https://api.openai.com/v1"
)

// Config is the environment-sourced LLM endpoint configuration.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// ConfigFromViper reads the ai.* settings. Defaults cover everything except
// the API key, whose absence is surfaced when a call is attempted rather
// than here, so the rest of the application runs without AI configured.
func ConfigFromViper(v *viper.Viper) Config {
	cfg := Config{
		Provider: v.GetString("ai-provider"),
		APIKey:   v.GetString("ai-api-key"),
		Model:    v.GetString("ai-model"),
		BaseURL:  v.GetString("ai-base-url"),
	}
	if cfg.Provider == "" {
		cfg.Provider = defaultProvider
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return cfg
}

// Validate reports whether the configuration is usable for a call.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
