// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package recommend

import (
	"fmt"

	"github.com/tomtom215/lottopick/internal/models"
)

// Config contains all configuration for the sampler.
type Config struct {
	// TierSize is K for the Top-K and Bottom-K pools.
	TierSize int `json:"tier_size"`

	// TopCount is how many numbers come from the Top tier.
	TopCount int `json:"top_count"`

	// BottomChoices lists the allowed Bottom tier draw sizes; one is picked
	// uniformly per attempt.
	BottomChoices []int `json:"bottom_choices"`

	// MaxAttempts bounds the sampling loop for one request.
	MaxAttempts int `json:"max_attempts"`

	// MaxCount bounds the number of combinations per request.
	MaxCount int `json:"max_count"`

	// Seed is the random seed. If zero, the clock is used.
	Seed int64 `json:"seed"`

	// Constraints are the acceptance conditions.
	Constraints Constraints `json:"constraints"`
}

// DefaultConfig returns the default sampler configuration.
func DefaultConfig() *Config {
	return &Config{
		TierSize:      20,
		TopCount:      3,
		BottomChoices: []int{1, 2},
		MaxAttempts:   10000,
		MaxCount:      10,
		Seed:          0,
		Constraints:   DefaultConstraints(),
	}
}

// Validate checks that every attempt can build a full combination.
func (c *Config) Validate() error {
	domain := models.MaxNumber - models.MinNumber + 1

	if c.TierSize < 1 || 2*c.TierSize >= domain {
		return fmt.Errorf("tier_size must be in [1, %d], got %d", (domain-1)/2, c.TierSize)
	}
	if c.TopCount < 1 || c.TopCount > c.TierSize {
		return fmt.Errorf("top_count must be in [1, tier_size], got %d", c.TopCount)
	}
	if len(c.BottomChoices) == 0 {
		return fmt.Errorf("bottom_choices must not be empty")
	}

	midPool := domain - 2*c.TierSize
	for _, b := range c.BottomChoices {
		if b < 0 || b > c.TierSize {
			return fmt.Errorf("bottom_choices entry must be in [0, tier_size], got %d", b)
		}
		mid := models.DrawSize - c.TopCount - b
		if mid < 0 {
			return fmt.Errorf("top_count %d plus bottom %d exceeds %d numbers", c.TopCount, b, models.DrawSize)
		}
		if mid > midPool {
			return fmt.Errorf("mid tier holds %d numbers but %d are needed with bottom %d", midPool, mid, b)
		}
	}

	if c.MaxAttempts < 0 {
		return fmt.Errorf("max_attempts must be non-negative, got %d", c.MaxAttempts)
	}
	if c.MaxCount < 1 {
		return fmt.Errorf("max_count must be positive, got %d", c.MaxCount)
	}

	return c.Constraints.Validate()
}
