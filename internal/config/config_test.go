package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{"ADDR", "WEB_DIR", "DATABASE_URL", "ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "SESSION_TTL", "OIDC_ISSUER"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &Config{
		Addr:       ":8080",
		WebDir:     "web",
		LogLevel:   "info",
		LogFormat:  "json",
		SessionTTL: 24 * time.Hour,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ADDR", ":9000")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://coach.example.com,")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("DATABASE_URL", "postgres://localhost/nutriplan")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.SessionTTL != 2*time.Hour || cfg.DatabaseURL != "postgres://localhost/nutriplan" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if diff := cmp.Diff([]string{"http://localhost:5173", "https://coach.example.com"}, cfg.AllowedOrigins); diff != "" {
		t.Errorf("AllowedOrigins mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalidTTL(t *testing.T) {
	chdir(t, t.TempDir())
	for _, v := range []string{"soon", "-1h"} {
		t.Setenv("SESSION_TTL", v)
		if _, err := Load(); err == nil {
			t.Errorf("SESSION_TTL=%q: expected error", v)
		}
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore Chdir: %v", err)
		}
	})
}
