package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(WithConfigFile(writeConfig(t, "name: templateapi\n")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Logging.Level)
	}
	if !cfg.Errors.Description || !cfg.Errors.Details {
		t.Error("error fields should be exposed by default in development")
	}
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := Load(WithConfigFile(writeConfig(t, `
name: templateapi
environment: staging
server:
  port: 9090
errors:
  description: true
  details: false
auth:
  enabled: true
  secret: s3cret
`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Errors.Details {
		t.Error("details exposure should be off")
	}
	if !cfg.Auth.Enabled || cfg.Auth.Secret != "s3cret" {
		t.Errorf("unexpected auth config %+v", cfg.Auth)
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	_, err := Load(WithConfigFile(writeConfig(t, "environment: sandbox\n")))
	if err == nil {
		t.Fatal("expected validation failure for unknown environment")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	_, err := Load(WithConfigFile(writeConfig(t, "server:\n  port: 99999\n")))
	if err == nil {
		t.Fatal("expected validation failure for out-of-range port")
	}
}
