package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/expokit/standplan/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 4173 {
		t.Errorf("got port %d, want 4173", cfg.Server.Port)
	}
	if cfg.Enrichment.Model != "gpt-4o-mini" {
		t.Errorf("got model %q", cfg.Enrichment.Model)
	}
	if cfg.Enrichment.MockDelay != 2*time.Second {
		t.Errorf("got mock delay %v", cfg.Enrichment.MockDelay)
	}
	if cfg.Enrichment.NoticeTTL != 2500*time.Millisecond {
		t.Errorf("got notice ttl %v", cfg.Enrichment.NoticeTTL)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
  static_dir: /srv/standplan
enrichment:
  model: gpt-4o
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("got port %d, want 9000", cfg.Server.Port)
	}
	if cfg.Server.StaticDir != "/srv/standplan" {
		t.Errorf("got static dir %q", cfg.Server.StaticDir)
	}
	if cfg.Enrichment.Model != "gpt-4o" {
		t.Errorf("got model %q", cfg.Enrichment.Model)
	}
	// Untouched keys keep their defaults.
	if cfg.Enrichment.MaxTokens != 300 {
		t.Errorf("got max tokens %d, want 300", cfg.Enrichment.MaxTokens)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := config.Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
