package ratelimit

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// envConfig is the environment form of Config.
type envConfig struct {
	Enabled         bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	DefaultLimit    int           `env:"RATE_LIMIT_DEFAULT_LIMIT" envDefault:"1000"`
	DefaultWindow   time.Duration `env:"RATE_LIMIT_DEFAULT_WINDOW" envDefault:"1m"`
	CleanupInterval time.Duration `env:"RATE_LIMIT_CLEANUP_INTERVAL" envDefault:"5m"`
	Whitelist       []string      `env:"RATE_LIMIT_WHITELIST" envSeparator:","`
	Blacklist       []string      `env:"RATE_LIMIT_BLACKLIST" envSeparator:","`
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() (*Config, error) {
	raw, err := env.ParseAs[envConfig]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate limit environment: %w", err)
	}
	if !raw.Enabled {
		return &Config{Enabled: false}, nil
	}
	if raw.DefaultLimit <= 0 || raw.DefaultWindow <= 0 {
		return nil, fmt.Errorf("rate limit default limit and window must be positive")
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    raw.DefaultLimit,
		DefaultWindow:   raw.DefaultWindow,
		CleanupInterval: raw.CleanupInterval,
		Whitelist:       toSet(raw.Whitelist),
		Blacklist:       toSet(raw.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}, nil
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: calls that reach the model backend
		{Path: "/interview/start", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/interview/next", Method: "POST", Limit: 120, Window: time.Hour, Burst: 10},
		{Path: "/interview/answer", Method: "POST", Limit: 120, Window: time.Hour, Burst: 10},
		{Path: "/interview/end", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/evaluate", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},
		{Path: "/plan", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},
		{Path: "/interview/", Method: "GET", Limit: 300, Window: time.Minute, Burst: 30},

		// Reads without a model call and /analytics use the default limit.
		// /health and /metrics are unlimited, see MatchEndpoint.
	}
}

func toSet(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, item := range list {
		if item != "" {
			result[item] = true
		}
	}
	return result
}
