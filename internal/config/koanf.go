// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"lottopick.yaml",
	"config.yaml",
	"/etc/lottopick/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultSourceURL is the official results page.
const DefaultSourceURL = "https://dhlottery.co.kr/gameResult.do?method=byWin"

func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			File: "lotto_winners.csv",
		},
		Source: SourceConfig{
			URL:                DefaultSourceURL,
			Timeout:            5 * time.Second,
			RequestDelay:       1 * time.Second, // Keeps the results site from throttling us
			UserAgent:          "lottopick/1.0",
			BreakerMaxFailures: 5,
			BreakerTimeout:     time.Minute,
		},
		Recommend: RecommendConfig{
			Count:       5,
			MaxCount:    10,
			TierSize:    20,
			HotColdSize: 10,
			MaxAttempts: 10000,
			Seed:        0,
		},
		Sync: SyncConfig{
			Enabled:   false,
			Interval:  24 * time.Hour,
			OnStartup: true,
		},
		Server: ServerConfig{
			Host:              "127.0.0.1",
			Port:              8645,
			ShutdownTimeout:   10 * time.Second,
			RateLimitRequests: 60,
			RateLimitWindow:   time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Default returns the built-in defaults without reading files or environment.
func Default() *Config {
	return defaultConfig()
}

// Load loads configuration from defaults, an optional YAML file and the environment.
//
// configPath, when non-empty, must point to an existing file. Otherwise
// CONFIG_PATH and DefaultConfigPaths are searched and a missing file is fine.
// Precedence: ENV > File > Defaults.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath == "" {
		configPath = findConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" when none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	"lotto_data_file": "data.file",

	"lotto_source_url":           "source.url",
	"lotto_source_timeout":       "source.timeout",
	"lotto_request_delay":        "source.request_delay",
	"lotto_user_agent":           "source.user_agent",
	"lotto_breaker_max_failures": "source.breaker_max_failures",
	"lotto_breaker_timeout":      "source.breaker_timeout",

	"lotto_recommend_count":     "recommend.count",
	"lotto_recommend_max_count": "recommend.max_count",
	"lotto_tier_size":           "recommend.tier_size",
	"lotto_hot_cold_size":       "recommend.hot_cold_size",
	"lotto_max_attempts":        "recommend.max_attempts",
	"lotto_seed":                "recommend.seed",

	"lotto_sync_enabled":    "sync.enabled",
	"lotto_sync_interval":   "sync.interval",
	"lotto_sync_on_startup": "sync.on_startup",

	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"rate_limit_requests":   "server.rate_limit_requests",
	"rate_limit_window":     "server.rate_limit_window",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" so they are skipped.
//
// Examples:
//   - LOTTO_DATA_FILE -> data.file
//   - LOTTO_REQUEST_DELAY -> source.request_delay
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
