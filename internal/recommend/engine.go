// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package recommend

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/lottopick/internal/metrics"
	"github.com/tomtom215/lottopick/internal/models"
	"github.com/tomtom215/lottopick/internal/stats"
)

var (
	// ErrInvalidCount is returned when the requested count is negative or above MaxCount.
	ErrInvalidCount = errors.New("invalid recommendation count")

	// ErrEmptyTable is returned when the frequency table was built from no draws.
	ErrEmptyTable = errors.New("frequency table has no draws")
)

// Result is the outcome of one Recommend call.
type Result struct {
	// Combinations are the accepted combinations in acceptance order.
	Combinations []models.Combination `json:"combinations"`

	// Requested is the count asked for.
	Requested int `json:"requested"`

	// Attempts is the number of candidates drawn.
	Attempts int `json:"attempts"`

	// Exhausted is true when the attempt budget ran out before Requested
	// combinations were accepted.
	Exhausted bool `json:"exhausted"`

	// Rejections counts rejected candidates by reason.
	Rejections map[RejectReason]int `json:"rejections,omitempty"`
}

// Short reports whether fewer combinations than requested were produced.
func (r *Result) Short() bool {
	return len(r.Combinations) < r.Requested
}

// Sampler produces combinations by rejection sampling.
// It is safe for concurrent use.
type Sampler struct {
	config *Config
	logger zerolog.Logger

	// Random source (protected by mu; Recommend calls are serialised)
	rng *rand.Rand
	mu  sync.Mutex
}

// NewSampler creates a Sampler. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSampler(cfg *Config, logger zerolog.Logger) (*Sampler, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Sampler{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // not used for anything security related
	}, nil
}

// Config returns the sampler configuration.
func (s *Sampler) Config() *Config {
	return s.config
}

// Recommend draws up to n distinct combinations that pass every constraint.
//
// n == 0 returns an empty result without drawing. When the attempt budget runs
// out first the result is short and Exhausted is set; this is not an error.
func (s *Sampler) Recommend(table *stats.FrequencyTable, n int) (*Result, error) {
	if n < 0 || n > s.config.MaxCount {
		return nil, fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidCount, n, s.config.MaxCount)
	}

	result := &Result{
		Combinations: make([]models.Combination, 0, n),
		Requested:    n,
		Rejections:   make(map[RejectReason]int),
	}
	if n == 0 {
		return result, nil
	}

	if table == nil || table.Draws() == 0 {
		return nil, ErrEmptyTable
	}

	tiers, err := table.Tiers(s.config.TierSize)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for result.Attempts < s.config.MaxAttempts && len(result.Combinations) < n {
		result.Attempts++

		candidate := s.draw(tiers)
		reason := s.config.Constraints.Check(candidate, result.Combinations)
		if reason != Accepted {
			result.Rejections[reason]++
			continue
		}
		result.Combinations = append(result.Combinations, candidate)
	}

	result.Exhausted = len(result.Combinations) < n

	s.record(result)
	return result, nil
}

// draw builds one sorted candidate from the tiers. Caller holds s.mu.
func (s *Sampler) draw(tiers stats.Tiers) models.Combination {
	bottom := s.config.BottomChoices[s.rng.Intn(len(s.config.BottomChoices))]
	mid := models.DrawSize - s.config.TopCount - bottom

	picked := make([]int, 0, models.DrawSize)
	picked = append(picked, s.sample(tiers.Top, s.config.TopCount)...)
	picked = append(picked, s.sample(tiers.Bottom, bottom)...)
	picked = append(picked, s.sample(tiers.Mid, mid)...)
	return models.NewCombination(picked)
}

// sample returns k distinct values from pool using a partial Fisher-Yates shuffle.
func (s *Sampler) sample(pool []int, k int) []int {
	buf := make([]int, len(pool))
	copy(buf, pool)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:k]
}

func (s *Sampler) record(result *Result) {
	reasons := make(map[string]int, len(result.Rejections))
	for r, c := range result.Rejections {
		reasons[string(r)] = c
	}
	metrics.RecordRecommendation(result.Attempts, len(result.Combinations), reasons, result.Exhausted)

	event := s.logger.Debug()
	if result.Exhausted {
		event = s.logger.Warn()
	}
	event.
		Int("requested", result.Requested).
		Int("accepted", len(result.Combinations)).
		Int("attempts", result.Attempts).
		Bool("exhausted", result.Exhausted).
		Msg("Recommendation sampling finished")
}
