// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/lottopick/internal/config"
	"github.com/tomtom215/lottopick/internal/logging"
	"github.com/tomtom215/lottopick/internal/metrics"
	"github.com/tomtom215/lottopick/internal/models"
)

// fetchBatchHint bounds the initial capacity of the fetched-draw buffer.
const fetchBatchHint = 64

// Report summarises one sync run.
type Report struct {
	// Latest is the newest round published by the source.
	Latest int `json:"latest_round"`

	// Saved is the estimated newest round already stored.
	Saved int `json:"saved_round_estimate"`

	// Fetched lists the rounds merged, newest first.
	Fetched []int `json:"fetched_rounds"`

	// Skipped lists the rounds that failed to fetch, newest first.
	Skipped []int `json:"skipped_rounds"`

	// Total is the number of draws after merging.
	Total int `json:"total_draws"`

	Duration time.Duration `json:"duration"`
}

// UpToDate reports whether no rounds were missing.
func (r *Report) UpToDate() bool {
	return r.Latest <= r.Saved
}

// Syncer fetches rounds missing from a History.
type Syncer struct {
	source  Source
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewSyncer creates a Syncer reading from src. Requests are spaced at least
// cfg.RequestDelay apart; a zero delay disables pacing.
func NewSyncer(src Source, cfg *config.SourceConfig) *Syncer {
	limit := rate.Inf
	if cfg.RequestDelay > 0 {
		limit = rate.Every(cfg.RequestDelay)
	}

	return &Syncer{
		source:  src,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logging.WithComponent("sync"),
	}
}

// log returns the component logger tagged with the run's correlation ID.
func (s *Syncer) log(ctx context.Context) *zerolog.Logger {
	l := s.logger
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		l = l.With().Str("correlation_id", id).Logger()
	}
	return &l
}

// LatestRemoteRound returns the newest published round. Any failure,
// including a round outside [0, MaxRound], is reported as ErrSourceUnavailable.
func (s *Syncer) LatestRemoteRound(ctx context.Context) (int, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	round, err := s.source.LatestRound(ctx)
	if err != nil {
		if errors.Is(err, ErrSourceUnavailable) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if round < 0 || round > MaxRound {
		return 0, fmt.Errorf("%w: %w: latest round %d out of range", ErrSourceUnavailable, ErrMalformedPage, round)
	}

	metrics.SyncLatestRemoteRound.Set(float64(round))
	return round, nil
}

// SavedRoundEstimate returns the newest round assumed to be stored.
//
// The history carries no round numbers, so this is the draw count. A gap from
// an earlier skipped round makes the estimate one low per gap, so a later sync
// starts that many rounds early. While a BreakerSource is open every
// remaining round of the run is skipped without a request, so one outage can
// leave a gap per remaining round and shift the estimate by as many.
func SavedRoundEstimate(h models.History) int {
	return len(h)
}

// FetchRound fetches one round. Failures are logged and reported as absent.
func (s *Syncer) FetchRound(ctx context.Context, round int) (models.Draw, bool) {
	start := time.Now()
	draw, err := s.source.FetchRound(ctx, round)
	metrics.RecordRoundFetch(time.Since(start))

	if err != nil {
		s.log(ctx).Warn().Err(err).Int("round", round).Msg("Round fetch failed, skipping")
		return models.Draw{}, false
	}
	return draw, true
}

// Sync returns h with every missing round prepended, newest first.
//
// Rounds from the latest remote round down to SavedRoundEstimate(h)+1 are
// fetched one at a time. Failed rounds are skipped. h itself is never
// modified. Only a failed latest-round lookup or a cancelled ctx is an error,
// in which case h is returned unchanged.
func (s *Syncer) Sync(ctx context.Context, h models.History) (models.History, *Report, error) {
	start := time.Now()
	report := &Report{
		Saved:   SavedRoundEstimate(h),
		Fetched: []int{},
		Skipped: []int{},
		Total:   len(h),
	}

	latest, err := s.LatestRemoteRound(ctx)
	if err != nil {
		report.Duration = time.Since(start)
		return h, report, err
	}
	report.Latest = latest

	log := s.log(ctx)
	if report.UpToDate() {
		log.Info().Int("latest_round", latest).Int("saved_round", report.Saved).Msg("History already up to date")
		report.Duration = time.Since(start)
		return h, report, nil
	}

	log.Info().
		Int("latest_round", latest).
		Int("saved_round", report.Saved).
		Int("missing", latest-report.Saved).
		Msg("Fetching missing rounds")

	fetched := make([]models.Draw, 0, min(latest-report.Saved, fetchBatchHint))
	for round := latest; round > report.Saved; round-- {
		if err := s.limiter.Wait(ctx); err != nil {
			report.Duration = time.Since(start)
			return h, report, fmt.Errorf("sync interrupted at round %d: %w", round, err)
		}

		draw, ok := s.FetchRound(ctx, round)
		if !ok {
			report.Skipped = append(report.Skipped, round)
			continue
		}
		fetched = append(fetched, draw)
		report.Fetched = append(report.Fetched, round)
		log.Debug().Int("round", round).Str("numbers", draw.String()).Msg("Round fetched")
	}

	merged := h.Prepend(fetched)
	report.Total = len(merged)
	report.Duration = time.Since(start)

	log.Info().
		Int("fetched", len(report.Fetched)).
		Int("skipped", len(report.Skipped)).
		Int("total", report.Total).
		Dur("duration", report.Duration).
		Msg("Sync finished")

	return merged, report, nil
}
