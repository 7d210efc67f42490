package config

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoad_defaults(t *testing.T) {
	for _, k := range []string{"PORT", "REPOSITORY", "FETCH_CONCURRENCY", "REQUEST_TIMEOUT", "LOG_LEVEL", "ADMIN_USER", "ADMIN_PASSWORD"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Port)
	}
	if cfg.Repository != REPOSITORY_MOCK {
		t.Errorf("expected mock repository, got %s", cfg.Repository)
	}
	if cfg.FetchConcurrency != 4 {
		t.Errorf("expected fetch concurrency 4, got %d", cfg.FetchConcurrency)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected 30s request timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("expected info log level, got %s", cfg.LogLevel)
	}
	if cfg.AdminEnabled() {
		t.Errorf("admin should be disabled without credentials")
	}
}

func TestLoad_live(t *testing.T) {
	t.Setenv("REPOSITORY", "LIVE")
	t.Setenv("SPORTSDAY_API_URL", "https://api.example.com")
	t.Setenv("SPORTSDAY_API_TOKEN", "secret-token")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Repository != REPOSITORY_LIVE || cfg.Port != 8080 || cfg.LogLevel != zerolog.DebugLevel {
		t.Errorf("unexpected config: %s", cfg.Redacted())
	}
	if strings.Contains(cfg.Redacted(), "secret-token") {
		t.Errorf("redacted config leaks the token: %s", cfg.Redacted())
	}
}

func TestLoad_errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		err  string
	}{
		{name: "bad port", env: map[string]string{"PORT": "abc"}, err: "PORT"},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}, err: "PORT"},
		{name: "bad timeout", env: map[string]string{"REQUEST_TIMEOUT": "soon"}, err: "REQUEST_TIMEOUT"},
		{name: "zero concurrency", env: map[string]string{"FETCH_CONCURRENCY": "0"}, err: "FETCH_CONCURRENCY"},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}, err: "LOG_LEVEL"},
		{name: "unknown repository", env: map[string]string{"REPOSITORY": "sqlite"}, err: "REPOSITORY"},
		{name: "live without url", env: map[string]string{"REPOSITORY": "live", "SPORTSDAY_API_URL": ""}, err: "SPORTSDAY_API_URL"},
		{name: "postgres without conn", env: map[string]string{"REPOSITORY": "postgres", "POSTGRES_CONN_STR": ""}, err: "POSTGRES_CONN_STR"},
		{name: "half client credentials", env: map[string]string{"REPOSITORY": "live", "SPORTSDAY_API_URL": "http://x", "SPORTSDAY_CLIENT_ID": "id", "SPORTSDAY_CLIENT_SECRET": ""}, err: "SPORTSDAY_CLIENT_SECRET"},
		{name: "admin user only", env: map[string]string{"ADMIN_USER": "admin", "ADMIN_PASSWORD": ""}, err: "ADMIN_PASSWORD"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.err) {
				t.Errorf("expected an error mentioning %s, got %v", tc.err, err)
			}
		})
	}
}
