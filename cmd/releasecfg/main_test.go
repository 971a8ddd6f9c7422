package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/releasecfg/internal/application"
	"github.com/eugenenazirov/releasecfg/internal/config"
)

func TestParseFillsOnlyPassedFlags(t *testing.T) {
	c := newCLI()
	cmd, err := c.parse([]string{"--file", "release.toml", "--dry-run", "serve", "--port", "9000", "--rate-limit-rps", "0"})
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if cmd != "serve" {
		t.Fatalf("expected serve command, got %q", cmd)
	}

	o := c.overrides
	if o.ReleaseConfig == nil || *o.ReleaseConfig != "release.toml" {
		t.Fatalf("expected release config override, got %v", o.ReleaseConfig)
	}
	if o.DryRun == nil || !*o.DryRun {
		t.Fatalf("expected dry-run override")
	}
	if o.Port == nil || *o.Port != "9000" {
		t.Fatalf("expected port override, got %v", o.Port)
	}
	if o.RateLimitRPS == nil || *o.RateLimitRPS != 0 {
		t.Fatalf("expected rate limit override of 0, got %v", o.RateLimitRPS)
	}
	if o.RateLimitBurst != nil || o.BaseDir != nil || o.LogLevel != nil {
		t.Fatalf("expected unset flags to stay nil, got %+v", o)
	}
}

func TestParseDefaultsToCheck(t *testing.T) {
	c := newCLI()
	cmd, err := c.parse(nil)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if cmd != "check" {
		t.Fatalf("expected check command, got %q", cmd)
	}
}

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{
			name: "valid",
			body: `
project: {name: app, version: 1.0.0}
release:
  gitlab: {owner: acme, name: app}
`,
			wantCode: 0,
			wantOut:  "gitlab:",
		},
		{
			name:     "invalid",
			body:     "project: {name: app}\n",
			wantCode: 1,
			wantErr:  "project.version must not be blank",
		},
		{
			name:     "malformed",
			body:     "project: [",
			wantCode: 1,
			wantErr:  "load release configuration",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "releasecfg.yml"), []byte(tc.body), 0o600); err != nil {
				t.Fatalf("write release file: %v", err)
			}
			app, err := application.New(config.Config{
				ReleaseConfig: "releasecfg.yml",
				BaseDir:       dir,
				Port:          "0",
				MaxBodyBytes:  1 << 20,
			}, zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("application.New returned error: %v", err)
			}

			var stdout, stderr bytes.Buffer
			if code := runCheck(app, &stdout, &stderr); code != tc.wantCode {
				t.Fatalf("expected exit code %d, got %d (stderr: %s)", tc.wantCode, code, stderr.String())
			}
			if !strings.Contains(stdout.String(), tc.wantOut) {
				t.Fatalf("expected stdout to contain %q, got %s", tc.wantOut, stdout.String())
			}
			if !strings.Contains(stderr.String(), tc.wantErr) {
				t.Fatalf("expected stderr to contain %q, got %s", tc.wantErr, stderr.String())
			}
		})
	}
}
