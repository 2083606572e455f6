// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package cli

import (
	"fmt"

	"github.com/tomtom215/lottopick/internal/config"
	"github.com/tomtom215/lottopick/internal/history"
	"github.com/tomtom215/lottopick/internal/logging"
	"github.com/tomtom215/lottopick/internal/recommend"
	lottosync "github.com/tomtom215/lottopick/internal/sync"
)

// app holds the components shared by the commands.
type app struct {
	cfg   *config.Config
	store *history.Store
}

func newApp(cfg *config.Config) *app {
	return &app{
		cfg:   cfg,
		store: history.NewStore(cfg.Data.File),
	}
}

// sampler builds a recommend.Sampler from the recommend section.
func (a *app) sampler() (*recommend.Sampler, error) {
	return recommend.NewSampler(samplerConfig(&a.cfg.Recommend), logging.WithComponent("recommend"))
}

// syncManager wires the results page source behind a circuit breaker and
// the politeness limiter into a sync.Manager over the history file.
func (a *app) syncManager() (*lottosync.Manager, error) {
	src, err := lottosync.NewHTTPSource(&a.cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("results source: %w", err)
	}
	syncer := lottosync.NewSyncer(lottosync.NewBreakerSource(src, &a.cfg.Source), &a.cfg.Source)
	return lottosync.NewManager(a.store, syncer, &a.cfg.Sync), nil
}

func samplerConfig(rc *config.RecommendConfig) *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.TierSize = rc.TierSize
	cfg.MaxAttempts = rc.MaxAttempts
	cfg.MaxCount = rc.MaxCount
	cfg.Seed = rc.Seed
	return cfg
}
