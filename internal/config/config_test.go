package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "APP_TITLE", "STORE_DRIVER", "DB_PATH", "REDIS_ADDR", "REDIS_PREFIX",
		"STORAGE_KEY", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT_SECONDS",
		"SESSION_TTL_MINUTES", "MAX_SESSIONS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %#v", cfg)
	}
	if cfg.StorageKey != "todos" {
		t.Errorf("expected storage key todos, got %q", cfg.StorageKey)
	}
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "mytodos.yaml")
	yml := "port: \"9090\"\nstore_driver: memory\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9090" || cfg.StoreDriver != "memory" {
		t.Errorf("expected YAML values, got %#v", cfg)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected env to override YAML, got %q", cfg.LogLevel)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_KEY=work-todos\n"), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	// godotenv does not override variables that are already set, even empty.
	os.Unsetenv("STORAGE_KEY")
	t.Cleanup(func() { os.Unsetenv("STORAGE_KEY") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StorageKey != "work-todos" {
		t.Errorf("expected .env value, got %q", cfg.StorageKey)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")

	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric timeout")
	}
}

func TestLoad_SessionSettings(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("SESSION_TTL_MINUTES", "30")
	t.Setenv("MAX_SESSIONS", "50")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SessionTTL() != 30*time.Minute || cfg.MaxSessions != 50 {
		t.Errorf("expected 30m ttl and 50 sessions, got %v and %d", cfg.SessionTTL(), cfg.MaxSessions)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"non-numeric port", func(c *Config) { c.Port = "http" }, true},
		{"unknown driver", func(c *Config) { c.StoreDriver = "etcd" }, true},
		{"sqlite without path", func(c *Config) { c.DBPath = "" }, true},
		{"redis without addr", func(c *Config) { c.StoreDriver = "redis"; c.RedisAddr = "" }, true},
		{"memory needs nothing", func(c *Config) { c.StoreDriver = "memory"; c.DBPath = "" }, false},
		{"empty key", func(c *Config) { c.StorageKey = "" }, true},
		{"zero timeout", func(c *Config) { c.ShutdownTimeoutSeconds = 0 }, true},
		{"zero session ttl", func(c *Config) { c.SessionTTLMinutes = 0 }, true},
		{"zero session cap", func(c *Config) { c.MaxSessions = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}
