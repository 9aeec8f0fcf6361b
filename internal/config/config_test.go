package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/treewalk/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0, cfg.MaxDepth)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.Summary)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFull(t *testing.T) {
	path := writeConfig(t, `
max_depth: 3
log_level: debug
color: never
format: json
summary: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, &Config{MaxDepth: 3, LogLevel: "debug", Color: "never", Format: "json", Summary: true}, cfg)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "max_depth: 2\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MaxDepth)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "max_depth: [unclosed\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	depth := 4
	format := "markdown"

	cfg.MergeWithFlags(&depth, nil, nil, &format, nil)

	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel, "nil flags leave values untouched")
	assert.Equal(t, "auto", cfg.Color)

	level, colorMode, summary := "trace", "always", true
	cfg.MergeWithFlags(nil, &level, &colorMode, nil, &summary)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, "always", cfg.Color)
	assert.True(t, cfg.Summary)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, "max_depth must be >= 0"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, "invalid color"},
		{"bad format", func(c *Config) { c.Format = "xml" }, "invalid format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAcceptsEveryLoggerLevel(t *testing.T) {
	for _, level := range logger.Levels {
		cfg := DefaultConfig()
		cfg.LogLevel = level
		assert.NoError(t, cfg.Validate(), "level %s", level)
	}

	cfg := DefaultConfig()
	cfg.LogLevel = "verbose"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), strings.Join(logger.Levels, ", "))
}

func TestConfigPath(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		t.Setenv(EnvConfig, "/etc/treewalk.yaml")
		t.Setenv(EnvHome, "/ignored")

		path, err := ConfigPath()
		require.NoError(t, err)
		assert.Equal(t, "/etc/treewalk.yaml", path)
	})

	t.Run("home directory", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		home := t.TempDir()
		t.Setenv(EnvHome, home)

		path, err := ConfigPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "config.yaml"), path)
	})

	t.Run("user config dir", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		t.Setenv(EnvHome, "")

		path, err := ConfigPath()
		if err != nil {
			t.Skipf("no user config dir available: %v", err)
		}
		assert.Equal(t, "config.yaml", filepath.Base(path))
		assert.Equal(t, "treewalk", filepath.Base(filepath.Dir(path)))
	})
}

func TestLoadDefaultConfigUsesEnvironment(t *testing.T) {
	path := writeConfig(t, "format: html\n")
	t.Setenv(EnvConfig, path)

	cfg, err := LoadDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Format)
}
