package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "releasecfg.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RELEASECFG_PORT", "")
	t.Setenv("RELEASECFG_FILE", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.ReleaseConfig != defaultReleaseConfig {
		t.Fatalf("expected default release config, got %s", cfg.ReleaseConfig)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.MaxBodyBytes != defaultMaxBodyBytes {
		t.Fatalf("unexpected max body bytes: %d", cfg.MaxBodyBytes)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("RELEASECFG_PORT", "9000")
	t.Setenv("RELEASECFG_FILE", "jreleaser.yml")
	t.Setenv("RELEASECFG_DRY_RUN", "true")
	t.Setenv("RELEASECFG_RATE_LIMIT_BURST", "not-a-number")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.ReleaseConfig != "jreleaser.yml" || !cfg.DryRun {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("expected invalid burst to be ignored, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("RELEASECFG_PORT", "9000")
	t.Setenv("RELEASECFG_LOG_LEVEL", "warn")

	path := writeConfig(t, `
port: "9100"
output_dir: dist
log:
  level: debug
  encoding: console
rate_limit:
  rps: 0
write_timeout: 30s
`)
	port := "9200"
	cfg, err := Load(&CLIOverrides{ConfigFile: path, Port: &port})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9200" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	if cfg.LogLevel != "debug" || cfg.LogEncoding != "console" {
		t.Fatalf("expected YAML log settings to beat env, got %s/%s", cfg.LogLevel, cfg.LogEncoding)
	}
	if cfg.OutputDir != "dist" {
		t.Fatalf("expected YAML output dir, got %s", cfg.OutputDir)
	}
	if cfg.RateLimitRPS != 0 {
		t.Fatalf("expected explicit zero rps to disable limiting, got %v", cfg.RateLimitRPS)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("expected write timeout from YAML, got %s", cfg.WriteTimeout)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "log level", body: "log:\n  level: loud\n"},
		{name: "log encoding", body: "log:\n  encoding: xml\n"},
		{name: "duration", body: "idle_timeout: forever\n"},
		{name: "body size", body: "max_body_bytes: -1\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(&CLIOverrides{ConfigFile: writeConfig(t, tc.body)})
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
