package core

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds runtime settings for the API process.
type Config struct {
	Port                     string // HTTP listen port (e.g., "3000")
	DatabaseURL              string // PostgreSQL DSN
	JWTSecret                string // HMAC key for signing bearer tokens
	LogDir                   string // Directory to write application logs
	InitialAdminPasswordPath string // where to write generated admin password (if empty -> log output)
	BootstrapAdminEnabled    bool   // whether to run bootstrap admin creation at startup
}

// Load populates Config from environment variables.
// PORT, DATABASE_URL, and JWT_SECRET are mandatory: a missing value is a
// configuration error reported at startup, never deferred to request time.
func Load() (Config, error) {
	cfg := Config{
		Port:                     os.Getenv("PORT"),
		DatabaseURL:              firstNonEmpty(os.Getenv("DATABASE_URL"), os.Getenv("POSTGRES_URL")),
		JWTSecret:                os.Getenv("JWT_SECRET"),
		LogDir:                   firstNonEmpty(os.Getenv("LOG_DIR"), "/var/log/taskapi"),
		InitialAdminPasswordPath: os.Getenv("INITIAL_ADMIN_PASSWORD_PATH"),
		BootstrapAdminEnabled:    boolFromEnv("BOOTSTRAP_ADMIN", true),
	}

	var missing []string
	if cfg.Port == "" {
		missing = append(missing, "PORT")
	}
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// boolFromEnv reads a boolean from env var name, falling back to defaultVal when empty or invalid.
func boolFromEnv(name string, defaultVal bool) bool {
	if v := os.Getenv(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
