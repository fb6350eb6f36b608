// Package config loads runtime settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"
)

// Config holds the settings of the portfolio server.
// It is read once at startup and treated as immutable; cobra flags may override fields before use.
type Config struct {
	// Server
	Port string

	// Content
	ContentFile string
	Timezone    string

	// GitHub widget
	WidgetEnabled bool
	GitHubHandle  string
	GitHubAPIURL  string

	// Rate limit for /fragments/github and /contact, requests per minute per client IP.
	RateLimitPerMinute int
	// TrustProxy derives the client IP from X-Forwarded-For / X-Real-IP.
	TrustProxy         bool
}

// Load reads Config from the environment, applying defaults for unset values.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnvString("PORT", "8080"),
		ContentFile:        os.Getenv("CONTENT_FILE"),
		Timezone:           getEnvString("TIMEZONE", "Asia/Jakarta"),
		WidgetEnabled:      getEnvBool("GITHUB_WIDGET_ENABLED", false),
		GitHubHandle:       os.Getenv("GITHUB_USERNAME"),
		GitHubAPIURL:       os.Getenv("GITHUB_API_URL"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		TrustProxy:         getEnvBool("TRUST_PROXY", false),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimitPerMinute)
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
