// Package config defines service configuration structures and loading hooks.
package config

import "runtime"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory score submission queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of ingestion workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the submission deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// SearchThreshold is the default similarity cutoff for /search.
	// Callers may override it per request; observed call sites use 0.2–0.3.
	SearchThreshold float64 `koanf:"search_threshold"`

	// MaxSearchLimit caps GET /search?limit.
	MaxSearchLimit int `koanf:"max_search_limit"`

	// MaxSuggestions caps the autocomplete suggestion list.
	MaxSuggestions int `koanf:"max_suggestions"`

	// TeamContributingCount is the default best-N team scoring rule. Real
	// rules vary by category, so /teams accepts an override.
	TeamContributingCount int `koanf:"team_contributing_count"`

	// StandingsRebuildDelayMS is how long the store waits after the last
	// score write before recomputing standings.
	StandingsRebuildDelayMS int `koanf:"standings_rebuild_delay_ms"`

	// SeedDemoData loads the deterministic fixture dataset at startup.
	SeedDemoData bool `koanf:"seed_demo_data"`

	// DemoSeed drives the fixture generator; same seed, same dataset.
	DemoSeed int64 `koanf:"demo_seed"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:                "info",
		Addr:                    ":9080",
		QueueSize:               10_000,
		WorkerCount:             runtime.NumCPU() * 2,
		DedupeSize:              50_000,
		SearchThreshold:         0.2,
		MaxSearchLimit:          100,
		MaxSuggestions:          5,
		TeamContributingCount:   3,
		StandingsRebuildDelayMS: 300,
		SeedDemoData:            true,
		DemoSeed:                20240817,
	}
}
