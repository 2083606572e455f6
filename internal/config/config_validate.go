// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/tomtom215/lottopick/internal/logging"
)

// minRequestDelay keeps a misconfiguration from hammering the results site.
const minRequestDelay = 200 * time.Millisecond

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateSource(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSync(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateData() error {
	if c.Data.File == "" {
		return fmt.Errorf("LOTTO_DATA_FILE must not be empty")
	}
	return nil
}

func (c *Config) validateSource() error {
	u, err := url.Parse(c.Source.URL)
	if err != nil {
		return fmt.Errorf("invalid LOTTO_SOURCE_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("LOTTO_SOURCE_URL must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("LOTTO_SOURCE_URL must include a host")
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("LOTTO_SOURCE_TIMEOUT must be positive, got %v", c.Source.Timeout)
	}
	if c.Source.RequestDelay < minRequestDelay {
		return fmt.Errorf("LOTTO_REQUEST_DELAY must be at least 200ms, got %v", c.Source.RequestDelay)
	}
	if c.Source.BreakerMaxFailures < 1 {
		return fmt.Errorf("LOTTO_BREAKER_MAX_FAILURES must be at least 1, got %d", c.Source.BreakerMaxFailures)
	}
	if c.Source.BreakerTimeout <= 0 {
		return fmt.Errorf("LOTTO_BREAKER_TIMEOUT must be positive, got %v", c.Source.BreakerTimeout)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxCount < 1 {
		return fmt.Errorf("LOTTO_RECOMMEND_MAX_COUNT must be at least 1, got %d", r.MaxCount)
	}
	if r.Count < 1 || r.Count > r.MaxCount {
		return fmt.Errorf("LOTTO_RECOMMEND_COUNT must be between 1 and %d, got %d", r.MaxCount, r.Count)
	}
	// Three numbers come from the top tier and two mid numbers must remain.
	if r.TierSize < 3 || r.TierSize > 20 {
		return fmt.Errorf("LOTTO_TIER_SIZE must be between 3 and 20, got %d", r.TierSize)
	}
	if r.HotColdSize < 1 || r.HotColdSize > 22 {
		return fmt.Errorf("LOTTO_HOT_COLD_SIZE must be between 1 and 22, got %d", r.HotColdSize)
	}
	if r.MaxAttempts < 1 {
		return fmt.Errorf("LOTTO_MAX_ATTEMPTS must be at least 1, got %d", r.MaxAttempts)
	}
	return nil
}

func (c *Config) validateSync() error {
	if c.Sync.Enabled && c.Sync.Interval < c.Source.RequestDelay {
		return fmt.Errorf("LOTTO_SYNC_INTERVAL must be at least the request delay, got %v", c.Sync.Interval)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RateLimitRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Server.RateLimitRequests)
	}
	if c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Server.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid LOG_LEVEL %q", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
