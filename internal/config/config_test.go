package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTLHours != 72 {
		t.Fatalf("expected default token ttl 72h, got %d", cfg.Auth.TokenTTLHours)
	}
}

func TestLoadMergesYAMLOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := strings.Join([]string{
		"server:",
		"  port: 9999",
		"auth:",
		"  secret_key: from-file",
	}, "\n")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Fatalf("expected file port 9999, got %d", cfg.Server.Port)
	}
	if cfg.Auth.SecretKey != "from-file" {
		t.Fatalf("expected file secret, got %q", cfg.Auth.SecretKey)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("expected untouched default log level, got %q", cfg.Log.Level)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("SECRET_KEY", "from-env")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Fatalf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Auth.SecretKey != "from-env" {
		t.Fatalf("expected env secret, got %q", cfg.Auth.SecretKey)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}
