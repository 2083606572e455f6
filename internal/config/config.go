// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Source    SourceConfig    `koanf:"source"`
	Recommend RecommendConfig `koanf:"recommend"`
	Sync      SyncConfig      `koanf:"sync"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig locates the persisted draw history.
type DataConfig struct {
	// File is the flat CSV file holding one draw per line, newest first.
	File string `koanf:"file"`
}

// SourceConfig describes the remote results page.
type SourceConfig struct {
	// URL is the results page; the latest round is read from it and
	// per-round pages are requested by adding drwNo=<round>.
	URL string `koanf:"url"`

	// Timeout bounds every request. A timed-out round fetch is skipped.
	Timeout time.Duration `koanf:"timeout"`

	// RequestDelay is the pause between consecutive round fetches.
	RequestDelay time.Duration `koanf:"request_delay"`

	UserAgent string `koanf:"user_agent"`

	// BreakerMaxFailures opens the circuit after this many consecutive failures.
	BreakerMaxFailures int `koanf:"breaker_max_failures"`

	// BreakerTimeout is how long the circuit stays open before probing again.
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// Count is the default number of combinations per request.
	Count int `koanf:"count"`

	// MaxCount bounds the number of combinations per request.
	MaxCount int `koanf:"max_count"`

	// TierSize is K for the Top-K / Bottom-K sampling pools.
	TierSize int `koanf:"tier_size"`

	// HotColdSize is K for the hot/cold lists in reports.
	HotColdSize int `koanf:"hot_cold_size"`

	// MaxAttempts is the sampling attempt budget per request.
	MaxAttempts int `koanf:"max_attempts"`

	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `koanf:"seed"`
}

// SyncConfig controls scheduled syncing in serve mode.
type SyncConfig struct {
	Enabled   bool          `koanf:"enabled"`
	Interval  time.Duration `koanf:"interval"`
	OnStartup bool          `koanf:"on_startup"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimitRequests per RateLimitWindow per client IP on the API.
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}
