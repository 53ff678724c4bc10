// Package config is Trueflow's configuration surface: the ledger location,
// the default reviewer identity, default exclude kinds, and logging
// settings, loaded the way the teacher repo's internal/config loads its
// provider/store/observability settings.
package config

// Config is the merged application configuration.
type Config struct {
	Ledger        LedgerConfig        `yaml:"ledger"`
	Reviewer      ReviewerConfig      `yaml:"reviewer"`
	Scan          ScanConfig          `yaml:"scan"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// LedgerConfig locates the verdict ledger (§6).
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// ReviewerConfig names the identity recorded on verdicts a caller doesn't
// supply explicitly (§6's TRUEFLOW_REVIEWER fallback).
type ReviewerConfig struct {
	DefaultIdentity string `yaml:"defaultIdentity"`
}

// ScanConfig controls the Scanner's default behavior.
type ScanConfig struct {
	ExcludeKinds []string `yaml:"excludeKinds"`
	Concurrency  int      `yaml:"concurrency"`
}

// ObservabilityConfig configures logging.
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the Logger (internal/observability).
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, error
	Format string `yaml:"format"` // human, json
}

// Merge combines multiple configuration instances, later ones taking
// precedence field-by-field over earlier ones.
func Merge(configs ...Config) Config {
	result := Config{}
	for _, cfg := range configs {
		result = merge(result, cfg)
	}
	return result
}

func merge(base, overlay Config) Config {
	result := base
	if overlay.Ledger.Path != "" {
		result.Ledger.Path = overlay.Ledger.Path
	}
	if overlay.Reviewer.DefaultIdentity != "" {
		result.Reviewer.DefaultIdentity = overlay.Reviewer.DefaultIdentity
	}
	if len(overlay.Scan.ExcludeKinds) > 0 {
		result.Scan.ExcludeKinds = overlay.Scan.ExcludeKinds
	}
	if overlay.Scan.Concurrency != 0 {
		result.Scan.Concurrency = overlay.Scan.Concurrency
	}
	if overlay.Observability.Logging.Level != "" || overlay.Observability.Logging.Format != "" {
		result.Observability.Logging = overlay.Observability.Logging
	}
	return result
}
