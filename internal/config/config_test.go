package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:8000" {
		t.Errorf("unexpected base URL: %s", cfg.API.BaseURL)
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.RequestTimeout())
	}
	if !cfg.UI.VimMode {
		t.Error("expected vim mode on by default")
	}
}

func TestLoadFileParsesTemplate(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("template must parse: %v", err)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.API.Timeout)
	}
	if cfg.UI.DesktopNotifications {
		t.Error("expected desktop notifications off in template")
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "api:\n  base_url: http://todo.internal:9000\n  timeout: 2s\nui:\n  vim_mode: false\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvBaseURL, "")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://todo.internal:9000" || cfg.API.Timeout != 2*time.Second {
		t.Errorf("file values not applied: %+v", cfg.API)
	}
	if cfg.UI.VimMode {
		t.Error("expected vim mode disabled")
	}

	t.Setenv(EnvBaseURL, "https://todo.example.test")
	cfg, err = LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "https://todo.example.test" {
		t.Errorf("environment must win over file, got %s", cfg.API.BaseURL)
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	tests := map[string]string{
		"bad yaml":   "api: [",
		"bad scheme": "api:\n  base_url: ftp://x\n",
		"negative":   "api:\n  timeout: -1s\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(data), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestReadDefersValidation(t *testing.T) {
	t.Setenv(EnvBaseURL, "not-a-url")
	path := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "not-a-url" {
		t.Errorf("unexpected base URL: %s", cfg.API.BaseURL)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected LoadFile to reject the env value")
	}

	cfg.API.BaseURL = "http://localhost:9000"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error after override: %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://localhost:8123"
	cfg.UI.DesktopNotifications = true

	if err := Save(cfg, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.API.BaseURL != cfg.API.BaseURL || !loaded.UI.DesktopNotifications {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
