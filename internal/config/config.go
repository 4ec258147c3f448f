// Package config resolves runtime settings: a YAML config file under
// the tasker home directory, with environment variable overrides. A
// .env file is honored when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	taskerDir  = ".tasker"
	configFile = "config.yaml"

	// BackendFile stores each key as a JSON file.
	BackendFile = "file"
	// BackendSQLite stores all keys in one SQLite database.
	BackendSQLite = "sqlite"
)

// Config keeps the resolved runtime settings.
type Config struct {
	// Profile names the data directory; each profile is an isolated
	// world, like a separate browser profile.
	Profile string `yaml:"profile"`
	// Backend selects the persistence backend: "file" or "sqlite".
	Backend string `yaml:"backend"`
	// DatabasePath overrides the SQLite file location.
	DatabasePath string `yaml:"database_path"`
}

// Load resolves configuration: defaults, then the config file if it
// exists, then environment variables. Missing config is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Profile: "default",
		Backend: BackendFile,
	}

	home, err := taskerHome()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(filepath.Join(home, configFile))
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}

	if v := strings.TrimSpace(os.Getenv("TASKER_PROFILE")); v != "" {
		cfg.Profile = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKER_BACKEND")); v != "" {
		cfg.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKER_DB")); v != "" {
		cfg.DatabasePath = v
	}

	if cfg.Backend != BackendFile && cfg.Backend != BackendSQLite {
		return cfg, fmt.Errorf("unknown backend %q (valid: file, sqlite)", cfg.Backend)
	}

	return cfg, nil
}

// DataDir returns the profile's data directory.
func (c Config) DataDir() (string, error) {
	home, err := taskerHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, c.Profile), nil
}

// DatabaseDSN returns the SQLite path for the profile, honoring an
// explicit override.
func (c Config) DatabaseDSN() (string, error) {
	if c.DatabasePath != "" {
		return c.DatabasePath, nil
	}
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tasker.db"), nil
}

// taskerHome returns ~/.tasker, honoring the TASKER_HOME override
// (tests point it at a temp dir).
func taskerHome() (string, error) {
	if v := strings.TrimSpace(os.Getenv("TASKER_HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, taskerDir), nil
}
