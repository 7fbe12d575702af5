// ABOUTME: Configuration loading and parsing for ceibas-hub
// ABOUTME: Supports YAML files with environment variable expansion and validation

package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config represents the complete ceibas-hub configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Logging   LoggingConfig   `yaml:"logging"`
	Announcer AnnouncerConfig `yaml:"announcer"`
	Access    AccessConfig    `yaml:"access"`
	Community CommunityConfig `yaml:"community"`
}

// ServerConfig holds server address configuration
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
}

// DatabaseConfig holds database configuration.
// An empty path runs the hub with in-memory state only.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AnnouncerConfig holds generative announcement configuration.
// An empty API key disables generation with a user-visible notice.
type AnnouncerConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// AccessConfig holds visitor access configuration
type AccessConfig struct {
	QRBaseURL string `yaml:"qr_base_url"`
}

// CommunityConfig holds community seed data configuration.
// SeedsPath optionally points at a TOML file overriding the built-in demo data.
type CommunityConfig struct {
	SeedsPath string `yaml:"seeds_path"`
}

// DefaultQRBaseURL is the public QR image service used when no override is configured.
const DefaultQRBaseURL = "https://api.qrserver.com/v1/create-qr-code/"

// DefaultAnnouncerModel is the generative model used when none is configured.
const DefaultAnnouncerModel = "gemini-2.5-flash"

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	// Match ${VAR_NAME} pattern
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyDefaults fills in defaults for optional fields
func (c *Config) applyDefaults() {
	if c.Access.QRBaseURL == "" {
		c.Access.QRBaseURL = DefaultQRBaseURL
	}
	if c.Announcer.Model == "" {
		c.Announcer.Model = DefaultAnnouncerModel
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}

	if c.Logging.Format != "" && c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be \"text\" or \"json\", got %q", c.Logging.Format)
	}

	return nil
}
