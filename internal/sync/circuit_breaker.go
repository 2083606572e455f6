// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package sync

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/lottopick/internal/config"
	"github.com/tomtom215/lottopick/internal/logging"
	"github.com/tomtom215/lottopick/internal/metrics"
	"github.com/tomtom215/lottopick/internal/models"
)

// BreakerSource wraps a Source with the circuit breaker pattern so a dead
// results site is not hit once per missing round.
//
// A page that loads but lacks the expected elements (ErrMalformedPage) counts
// as a success for the breaker: the site answered.
type BreakerSource struct {
	source Source
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewBreakerSource wraps src. The circuit opens after cfg.BreakerMaxFailures
// consecutive failures and probes again after cfg.BreakerTimeout.
func NewBreakerSource(src Source, cfg *config.SourceConfig) *BreakerSource {
	cbName := "results-page"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	maxFailures := uint32(1)
	if cfg.BreakerMaxFailures > 1 {
		maxFailures = uint32(cfg.BreakerMaxFailures) //nolint:gosec // bounded by config validation
	}

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 1,
		Interval:    0, // Counts are only cleared by a state change
		Timeout:     cfg.BreakerTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= maxFailures
			if shouldTrip {
				logging.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrMalformedPage)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerSource{
		source: src,
		cb:     cb,
		name:   cbName,
	}
}

// State returns the current breaker state as a string.
func (b *BreakerSource) State() string {
	return stateToString(b.cb.State())
}

// execute runs fn under circuit breaker protection and records the outcome.
func (b *BreakerSource) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := b.cb.Execute(fn)

	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
	case err != nil && !errors.Is(err, ErrMalformedPage):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		counts := b.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	}

	return result, err
}

// LatestRound calls the wrapped source with circuit breaker protection.
func (b *BreakerSource) LatestRound(ctx context.Context) (int, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.source.LatestRound(ctx)
	})
	if err != nil {
		return 0, err
	}
	round, ok := result.(int)
	if !ok {
		return 0, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return round, nil
}

// FetchRound calls the wrapped source with circuit breaker protection.
func (b *BreakerSource) FetchRound(ctx context.Context, round int) (models.Draw, error) {
	result, err := b.execute(func() (interface{}, error) {
		return b.source.FetchRound(ctx, round)
	})
	if err != nil {
		return models.Draw{}, err
	}
	draw, ok := result.(models.Draw)
	if !ok {
		return models.Draw{}, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return draw, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

