package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() RunConfig {
	cfg := Default()
	cfg.TargetURL = "http://example.test/health"
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Requests != 50 {
		t.Errorf("expected 50 requests, got %d", cfg.Requests)
	}
	if cfg.Concurrency != 50 {
		t.Errorf("expected concurrency 50, got %d", cfg.Concurrency)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.RequiredSuccessRate != 1.0 {
		t.Errorf("expected required success rate 1.0, got %g", cfg.RequiredSuccessRate)
	}
	if cfg.PerformanceThreshold != 2*time.Second {
		t.Errorf("expected 2s threshold, got %v", cfg.PerformanceThreshold)
	}
	if cfg.RPS != 0 {
		t.Errorf("expected unpaced default, got rps %d", cfg.RPS)
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunConfig)
	}{
		{"missing url", func(c *RunConfig) { c.TargetURL = "" }},
		{"zero requests", func(c *RunConfig) { c.Requests = 0 }},
		{"negative requests", func(c *RunConfig) { c.Requests = -5 }},
		{"zero concurrency", func(c *RunConfig) { c.Concurrency = 0 }},
		{"zero timeout", func(c *RunConfig) { c.RequestTimeout = 0 }},
		{"negative timeout", func(c *RunConfig) { c.RequestTimeout = -time.Second }},
		{"success rate below zero", func(c *RunConfig) { c.RequiredSuccessRate = -0.1 }},
		{"success rate above one", func(c *RunConfig) { c.RequiredSuccessRate = 1.1 }},
		{"zero threshold", func(c *RunConfig) { c.PerformanceThreshold = 0 }},
		{"negative rps", func(c *RunConfig) { c.RPS = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	yaml := `
target_url: http://example.test/health
requests: 100
concurrency: 25
request_timeout: 3s
required_success_rate: 0.99
performance_threshold: 1500ms
rps: 200
`
	path := writeConfig(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TargetURL != "http://example.test/health" {
		t.Errorf("unexpected target url %q", cfg.TargetURL)
	}
	if cfg.Requests != 100 {
		t.Errorf("expected 100 requests, got %d", cfg.Requests)
	}
	if cfg.Concurrency != 25 {
		t.Errorf("expected concurrency 25, got %d", cfg.Concurrency)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.RequiredSuccessRate != 0.99 {
		t.Errorf("expected success rate 0.99, got %g", cfg.RequiredSuccessRate)
	}
	if cfg.PerformanceThreshold != 1500*time.Millisecond {
		t.Errorf("expected threshold 1500ms, got %v", cfg.PerformanceThreshold)
	}
	if cfg.RPS != 200 {
		t.Errorf("expected rps 200, got %d", cfg.RPS)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "target_url: http://example.test/health\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Requests != 50 || cfg.Concurrency != 50 {
		t.Errorf("expected defaults to survive partial config, got requests=%d concurrency=%d",
			cfg.Requests, cfg.Concurrency)
	}
	if cfg.TargetURL != "http://example.test/health" {
		t.Errorf("unexpected target url %q", cfg.TargetURL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "target_url: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}
