// Package config handles run configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// RunConfig describes a single validation run. Immutable once validated.
type RunConfig struct {
	TargetURL            string        `yaml:"target_url"`
	Requests             int           `yaml:"requests"`
	Concurrency          int           `yaml:"concurrency"`
	RequestTimeout       time.Duration `yaml:"request_timeout"`
	RequiredSuccessRate  float64       `yaml:"required_success_rate"`
	PerformanceThreshold time.Duration `yaml:"performance_threshold"`
	RPS                  int           `yaml:"rps"`
}

// Default returns the configuration the validator ships with: a burst of
// 50 fully concurrent probes, 5s request timeout, 2s mean-latency threshold
// and a zero-tolerance success rate.
func Default() RunConfig {
	return RunConfig{
		Requests:             50,
		Concurrency:          50,
		RequestTimeout:       5 * time.Second,
		RequiredSuccessRate:  1.0,
		PerformanceThreshold: 2 * time.Second,
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (RunConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks every field. Failures wrap ErrInvalidConfig.
func (c RunConfig) Validate() error {
	if c.TargetURL == "" {
		return fmt.Errorf("%w: target_url is required", ErrInvalidConfig)
	}
	if c.Requests < 1 {
		return fmt.Errorf("%w: requests must be >= 1, got %d", ErrInvalidConfig, c.Requests)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be >= 1, got %d", ErrInvalidConfig, c.Concurrency)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request_timeout must be positive, got %v", ErrInvalidConfig, c.RequestTimeout)
	}
	if c.RequiredSuccessRate < 0 || c.RequiredSuccessRate > 1 {
		return fmt.Errorf("%w: required_success_rate must be in [0,1], got %g", ErrInvalidConfig, c.RequiredSuccessRate)
	}
	if c.PerformanceThreshold <= 0 {
		return fmt.Errorf("%w: performance_threshold must be positive, got %v", ErrInvalidConfig, c.PerformanceThreshold)
	}
	if c.RPS < 0 {
		return fmt.Errorf("%w: rps must be >= 0, got %d", ErrInvalidConfig, c.RPS)
	}
	return nil
}
