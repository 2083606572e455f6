// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package recommend

import (
	"fmt"

	"github.com/tomtom215/lottopick/internal/models"
	"github.com/tomtom215/lottopick/internal/stats"
)

// RejectReason names the first condition a candidate failed.
// The empty value means the candidate was accepted.
type RejectReason string

const (
	Accepted          RejectReason = ""
	RejectInvalid     RejectReason = "invalid"
	RejectOddEven     RejectReason = "odd_even"
	RejectConsecutive RejectReason = "consecutive"
	RejectSections    RejectReason = "sections"
	RejectSum         RejectReason = "sum"
	RejectDuplicate   RejectReason = "duplicate"
)

// Constraints holds the acceptance conditions for a candidate combination.
type Constraints struct {
	OddMin      int `json:"odd_min"`
	OddMax      int `json:"odd_max"`
	MaxRun      int `json:"max_run"`
	MinSections int `json:"min_sections"`
	SumMin      int `json:"sum_min"`
	SumMax      int `json:"sum_max"`
}

// DefaultConstraints returns the standard filter set.
func DefaultConstraints() Constraints {
	return Constraints{
		OddMin:      2,
		OddMax:      4,
		MaxRun:      2,
		MinSections: 3,
		SumMin:      100,
		SumMax:      200,
	}
}

// Validate checks the bounds are ordered and satisfiable.
func (c Constraints) Validate() error {
	if c.OddMin < 0 || c.OddMax > models.DrawSize || c.OddMin > c.OddMax {
		return fmt.Errorf("odd range [%d, %d] must lie within [0, %d]", c.OddMin, c.OddMax, models.DrawSize)
	}
	if c.MaxRun < 0 {
		return fmt.Errorf("max_run must be non-negative, got %d", c.MaxRun)
	}
	if c.MinSections < 1 || c.MinSections > stats.SectionCount {
		return fmt.Errorf("min_sections must be in [1, %d], got %d", stats.SectionCount, c.MinSections)
	}
	if c.SumMin > c.SumMax {
		return fmt.Errorf("sum range [%d, %d] is empty", c.SumMin, c.SumMax)
	}
	return nil
}

// Check evaluates candidate against every condition and returns the first
// failure, or Accepted. It is pure: accepted is only read.
func (c Constraints) Check(candidate models.Combination, accepted []models.Combination) RejectReason {
	if candidate.Validate() != nil {
		return RejectInvalid
	}

	if odd := candidate.OddCount(); odd < c.OddMin || odd > c.OddMax {
		return RejectOddEven
	}

	nums := candidate.Numbers()
	if stats.ConsecutiveRunLength(nums) > c.MaxRun {
		return RejectConsecutive
	}
	if len(stats.Sections(nums)) < c.MinSections {
		return RejectSections
	}
	if sum := candidate.Sum(); sum < c.SumMin || sum > c.SumMax {
		return RejectSum
	}

	for _, a := range accepted {
		if a == candidate {
			return RejectDuplicate
		}
	}
	return Accepted
}

// Rationale describes the active filters for display next to recommendations.
func (c *Config) Rationale() []string {
	k := c.Constraints
	return []string{
		fmt.Sprintf("%d numbers from the %d most frequent, %v from the %d least frequent, the rest from the middle",
			c.TopCount, c.TierSize, c.BottomChoices, c.TierSize),
		fmt.Sprintf("odd count between %d and %d", k.OddMin, k.OddMax),
		fmt.Sprintf("no more than %d consecutive numbers", k.MaxRun),
		fmt.Sprintf("numbers spread over at least %d of %d sections", k.MinSections, stats.SectionCount),
		fmt.Sprintf("sum between %d and %d", k.SumMin, k.SumMax),
		"no duplicate combinations",
	}
}
