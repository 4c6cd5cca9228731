// Package config provides configuration loading and validation for the service
// and the CLI. Values come from an optional JSON file, overlaid by environment
// variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/logging"
)

// ProviderNone disables the model client; every model-backed step uses its fallback.
const ProviderNone = "none"

// Duration is a time.Duration that reads "90s" style strings from JSON and env.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config represents the service configuration.
// All fields are optional; missing values use defaults. An explicit zero is kept,
// so SESSION_TTL=0s disables session expiry.
type Config struct {
	// Server
	Port int `json:"port,omitempty" env:"PORT"`

	// Model backend
	LLMProvider  string   `json:"llm_provider,omitempty" env:"LLM_PROVIDER"` // gemini, ollama or none
	GeminiAPIKey string   `json:"gemini_api_key,omitempty" env:"GEMINI_API_KEY"`
	OllamaURL    string   `json:"ollama_url,omitempty" env:"OLLAMA_URL"`
	OllamaModel  string   `json:"ollama_model,omitempty" env:"OLLAMA_MODEL"`
	LLMTimeout   Duration `json:"llm_timeout,omitempty" env:"LLM_TIMEOUT"`

	// Sessions
	SessionTTL             Duration `json:"session_ttl,omitempty" env:"SESSION_TTL"`
	SessionCleanupInterval Duration `json:"session_cleanup_interval,omitempty" env:"SESSION_CLEANUP_INTERVAL"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" env:"LOG_LEVEL"`
	LogFormat string `json:"log_format,omitempty" env:"LOG_FORMAT"`
}

// Defaults returns the configuration used for anything left unset.
func Defaults() Config {
	return Config{
		Port:                   8080,
		LLMProvider:            string(llm.ProviderOllama),
		OllamaURL:              llm.DefaultOllamaURL,
		OllamaModel:            "mistral",
		LLMTimeout:             Duration(llm.DefaultTimeout),
		SessionTTL:             Duration(2 * time.Hour),
		SessionCleanupInterval: Duration(10 * time.Minute),
		LogLevel:               "info",
		LogFormat:              "console",
	}
}

// Load starts from Defaults, overlays the optional JSON file at path, then the
// environment, and validates the result. Only keys present in the file or the
// environment replace a default.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads configuration from a JSON file without defaults.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := readFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// readFile decodes the JSON file at path over cfg.
func readFile(path string, cfg *Config) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.LLMProvider {
	case "", string(llm.ProviderGemini), string(llm.ProviderOllama), ProviderNone:
	default:
		return fmt.Errorf("config error: unknown 'llm_provider' %q", c.LLMProvider)
	}

	if c.LLMTimeout < 0 {
		return fmt.Errorf("config error: 'llm_timeout' must be non-negative")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("config error: 'session_ttl' must be non-negative")
	}
	if c.SessionCleanupInterval < 0 {
		return fmt.Errorf("config error: 'session_cleanup_interval' must be non-negative")
	}

	switch strings.ToLower(c.LogFormat) {
	case "", "console", "json":
	default:
		return fmt.Errorf("config error: 'log_format' must be console or json")
	}

	return nil
}

// ModelsEnabled reports whether a model client should be created.
func (c *Config) ModelsEnabled() bool {
	return c.LLMProvider != ProviderNone
}

// LLMConfig returns the model configuration for the selected provider.
func (c *Config) LLMConfig() *llm.Config {
	var cfg *llm.Config
	if c.LLMProvider == string(llm.ProviderOllama) {
		cfg = llm.DefaultOllamaConfig(c.OllamaModel)
		if c.OllamaURL != "" {
			cfg.BaseURL = c.OllamaURL
		}
	} else {
		cfg = llm.DefaultGeminiConfig()
	}
	cfg.Timeout = time.Duration(c.LLMTimeout)
	return cfg
}

// LoggingOptions returns the logger options.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.LogLevel, Format: c.LogFormat}
}
