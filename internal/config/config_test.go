package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.UI.VimMode {
		t.Error("expected vim mode on by default")
	}
	if cfg.FetchTimeout() != 10*time.Second {
		t.Errorf("expected 10s fetch timeout, got %v", cfg.FetchTimeout())
	}
	if cfg.DataFile() != "data.json" {
		t.Errorf("expected data.json default, got %s", cfg.DataFile())
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `holidays:
  country: DE
  fetch_timeout_seconds: 3
ui:
  vim_mode: false
  default_view: labels
data:
  export_path: /tmp/cal.json
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Holidays.Country != "DE" {
		t.Errorf("expected country DE, got %s", cfg.Holidays.Country)
	}
	if cfg.FetchTimeout() != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.FetchTimeout())
	}
	if cfg.UI.VimMode {
		t.Error("expected vim mode off")
	}
	if cfg.DataFile() != "/tmp/cal.json" {
		t.Errorf("expected /tmp/cal.json, got %s", cfg.DataFile())
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.UI.VimMode {
		t.Error("expected default config")
	}
}

func TestLoadFromMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: ["), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}
