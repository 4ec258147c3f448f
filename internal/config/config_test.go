package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TASKER_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Profile != "default" {
		t.Errorf("Profile = %q, want default", cfg.Profile)
	}
	if cfg.Backend != BackendFile {
		t.Errorf("Backend = %q, want file", cfg.Backend)
	}
}

func TestLoadConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TASKER_HOME", home)

	content := []byte("profile: familia\nbackend: sqlite\ndatabase_path: /tmp/custom.db\n")
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Profile != "familia" || cfg.Backend != BackendSQLite {
		t.Errorf("cfg = %+v, want file values", cfg)
	}

	dsn, err := cfg.DatabaseDSN()
	if err != nil {
		t.Fatalf("DatabaseDSN failed: %v", err)
	}
	if dsn != "/tmp/custom.db" {
		t.Errorf("DatabaseDSN = %q, want override", dsn)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TASKER_HOME", home)

	content := []byte("backend: file\n")
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TASKER_BACKEND", "sqlite")
	t.Setenv("TASKER_PROFILE", "guest")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != BackendSQLite || cfg.Profile != "guest" {
		t.Errorf("cfg = %+v, want env overrides", cfg)
	}

	dir, err := cfg.DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	if dir != filepath.Join(home, "guest") {
		t.Errorf("DataDir = %q, want %q", dir, filepath.Join(home, "guest"))
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("TASKER_HOME", t.TempDir())
	t.Setenv("TASKER_BACKEND", "redis")

	if _, err := Load(); err == nil {
		t.Error("Load should reject unknown backends")
	}
}
