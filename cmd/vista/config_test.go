package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zoobzio/vista"
)

func TestLoadConfig(t *testing.T) {
	path := writeTemp(t, "vista.yaml", `
debounce: 100ms
timeout: 30s
notify_timeout: 1s
notify_retries: 2
verbose: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Debounce.Duration() != 100*time.Millisecond {
		t.Errorf("expected debounce 100ms, got %s", cfg.Debounce.Duration())
	}
	if cfg.Timeout.Duration() != 30*time.Second {
		t.Errorf("expected timeout 30s, got %s", cfg.Timeout.Duration())
	}
	if cfg.NotifyRetries != 2 || !cfg.Verbose {
		t.Errorf("unexpected config %+v", cfg)
	}
	if len(cfg.Options()) != 2 {
		t.Errorf("expected 2 latch options, got %d", len(cfg.Options()))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeTemp(t, "vista.yaml", "verbose: false\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Debounce.Duration() != vista.DefaultDebounce {
		t.Errorf("expected default debounce, got %s", cfg.Debounce.Duration())
	}
	if len(cfg.Options()) != 0 {
		t.Errorf("expected no latch options, got %d", len(cfg.Options()))
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad duration", "debounce: soon\n", "invalid duration"},
		{"too many retries", "notify_retries: 50\n", "invalid config"},
		{"negative timeout", "timeout: -1s\n", "invalid config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "vista.yaml", tt.content)
			_, err := LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
