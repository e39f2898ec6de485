package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultGitHubURL      = "https://api.github.com"
	defaultUserAgent      = "gh-repo-export/1.0"
	defaultPageDelayMS    = 1000
	defaultTimeoutSeconds = 30
)

// Config holds application configuration.
type Config struct {
	GitHubURL string `yaml:"github_url"`
	UserAgent string `yaml:"user_agent"`

	// Pause between repository page requests, in milliseconds. Zero disables pacing.
	PageDelayMS int `yaml:"page_delay_ms"`

	// HTTP client timeout per request, in seconds.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Keep the provider payloads in the structured export.
	KeepRaw bool `yaml:"keep_raw"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		GitHubURL:      defaultGitHubURL,
		UserAgent:      defaultUserAgent,
		PageDelayMS:    defaultPageDelayMS,
		TimeoutSeconds: defaultTimeoutSeconds,
		KeepRaw:        true,
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and finally environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.GitHubURL = getEnvOrDefault("GITHUB_URL", cfg.GitHubURL)
	cfg.UserAgent = getEnvOrDefault("GH_EXPORT_USER_AGENT", cfg.UserAgent)
	cfg.PageDelayMS = getEnvInt("GH_EXPORT_PAGE_DELAY_MS", cfg.PageDelayMS)
	cfg.TimeoutSeconds = getEnvInt("GH_EXPORT_TIMEOUT_SECONDS", cfg.TimeoutSeconds)
	cfg.KeepRaw = getEnvBool("GH_EXPORT_KEEP_RAW", cfg.KeepRaw)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PageDelay returns the pause between page requests.
func (c *Config) PageDelay() time.Duration {
	return time.Duration(c.PageDelayMS) * time.Millisecond
}

// Timeout returns the HTTP client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) validate() error {
	if c.GitHubURL == "" {
		return fmt.Errorf("github_url must not be empty")
	}
	if c.PageDelayMS < 0 {
		return fmt.Errorf("page_delay_ms must not be negative, got %d", c.PageDelayMS)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
