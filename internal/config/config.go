// Package config defines process configuration and its loading hooks.
//
// Conventions:
// - New(ctx) returns a Config populated with defaults.
// - Load(ctx) layers defaults, an optional YAML file and SAW_* env vars.
// - External errors are wrapped with this package's sentinels.
package config

import (
	"context"
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`

	// ProblemFile names a YAML decision problem. Empty selects the bundled sample.
	ProblemFile string `koanf:"problem_file"`

	// NormalizeWeights rescales criterion weights to sum to 1 before aggregation.
	NormalizeWeights bool `koanf:"normalize_weights"`

	// WorkerCount bounds concurrent evaluations in a batch.
	WorkerCount int `koanf:"worker_count" validate:"gte=1"`

	// MetricsEnabled toggles Prometheus recording.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// MetricsFile, when set, receives the metrics in text exposition format on exit.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		NormalizeWeights: true,
		WorkerCount:      runtime.NumCPU(),
		MetricsEnabled:   true,
	}
}
