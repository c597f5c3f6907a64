package core

import (
	"strings"
	"testing"
)

func TestLoadRequiresCoreSettings(t *testing.T) {
	for _, name := range []string{"PORT", "DATABASE_URL", "POSTGRES_URL", "JWT_SECRET", "LOG_DIR", "BOOTSTRAP_ADMIN"} {
		t.Setenv(name, "")
	}

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when required variables are missing")
	}
	for _, want := range []string{"PORT", "DATABASE_URL", "JWT_SECRET"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should name %s", err, want)
		}
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/tasks")
	t.Setenv("POSTGRES_URL", "")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("LOG_DIR", "")
	t.Setenv("BOOTSTRAP_ADMIN", "false")
	t.Setenv("INITIAL_ADMIN_PASSWORD_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost:5432/tasks" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.LogDir != "/var/log/taskapi" {
		t.Errorf("LogDir default = %q", cfg.LogDir)
	}
	if cfg.BootstrapAdminEnabled {
		t.Error("BootstrapAdminEnabled should be false")
	}
}

func TestLoadAcceptsPostgresURLFallback(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_URL", "postgres://fallback:5432/tasks")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "postgres://fallback:5432/tasks" {
		t.Errorf("DatabaseURL = %q, want fallback value", cfg.DatabaseURL)
	}
}
