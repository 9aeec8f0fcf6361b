package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvConfig points directly at a configuration file.
	EnvConfig = "TREEWALK_CONFIG"
	// EnvHome names a directory holding config.yaml.
	EnvHome = "TREEWALK_HOME"
)

// ConfigPath returns the configuration file location
// Priority order:
//  1. TREEWALK_CONFIG environment variable (if set)
//  2. $TREEWALK_HOME/config.yaml (if TREEWALK_HOME is set)
//  3. <user config dir>/treewalk/config.yaml
//
// The file and its directory are never created.
func ConfigPath() (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}

	if home := os.Getenv(EnvHome); home != "" {
		return filepath.Join(home, "config.yaml"), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}

	return filepath.Join(dir, "treewalk", "config.yaml"), nil
}
