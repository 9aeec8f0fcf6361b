package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/harrison/treewalk/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config represents treewalk configuration options
type Config struct {
	// MaxDepth is the traversal depth bound (0 = immediate children of the root)
	MaxDepth int `yaml:"max_depth"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color selects colored output: auto, always or never
	Color string `yaml:"color"`

	// Format selects the output format: text, json, markdown or html
	Format string `yaml:"format"`

	// Summary prints an entry count after text listings
	Summary bool `yaml:"summary"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		MaxDepth: 0,
		LogLevel: logger.DefaultLevel,
		Color:    "auto",
		Format:   "text",
		Summary:  false,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.MaxDepth != 0 {
		cfg.MaxDepth = fileCfg.MaxDepth
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.Summary {
		cfg.Summary = fileCfg.Summary
	}

	return cfg, nil
}

// LoadDefaultConfig loads the configuration file found by ConfigPath.
// When no location can be determined the defaults are returned.
func LoadDefaultConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(maxDepth *int, logLevel *string, colorMode *string, format *string, summary *bool) {
	if maxDepth != nil {
		c.MaxDepth = *maxDepth
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if colorMode != nil {
		c.Color = *colorMode
	}
	if format != nil {
		c.Format = *format
	}
	if summary != nil {
		c.Summary = *summary
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: %s", c.LogLevel, strings.Join(logger.Levels, ", "))
	}

	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[c.Color] {
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	validFormats := map[string]bool{
		"text":     true,
		"json":     true,
		"markdown": true,
		"html":     true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format %q, must be one of: text, json, markdown, html", c.Format)
	}

	return nil
}
