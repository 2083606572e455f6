// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/lottopick/internal/config"
	"github.com/tomtom215/lottopick/internal/models"
)

// fakeSource serves rounds from memory and records every round requested.
type fakeSource struct {
	mu sync.Mutex

	latest    int
	latestErr error
	draws     map[int]models.Draw
	failing   map[int]bool

	latestCalls int
	fetched     []int
}

func newFakeSource(latest int) *fakeSource {
	f := &fakeSource{
		latest:  latest,
		draws:   make(map[int]models.Draw),
		failing: make(map[int]bool),
	}
	for r := 1; r <= latest; r++ {
		f.draws[r] = drawForRound(r)
	}
	return f
}

func (f *fakeSource) LatestRound(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latestCalls++
	if f.latestErr != nil {
		return 0, f.latestErr
	}
	return f.latest, nil
}

func (f *fakeSource) FetchRound(_ context.Context, round int) (models.Draw, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, round)
	if f.failing[round] {
		return models.Draw{}, fmt.Errorf("%w: round %d: connection reset", ErrFetchFailed, round)
	}
	d, ok := f.draws[round]
	if !ok {
		return models.Draw{}, fmt.Errorf("%w: round %d: %w", ErrFetchFailed, round, ErrMalformedPage)
	}
	return d, nil
}

func (f *fakeSource) fetchedRounds() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.fetched...)
}

// drawForRound returns a distinct valid draw for each round so merged order
// can be checked by value.
func drawForRound(round int) models.Draw {
	base := (round-1)%39 + 1
	return models.Draw{base, base + 1, base + 2, base + 3, base + 4, base + 6}
}

// historyUpTo returns rounds 1..n newest first.
func historyUpTo(n int) models.History {
	h := make(models.History, 0, n)
	for r := n; r >= 1; r-- {
		h = append(h, drawForRound(r))
	}
	return h
}

func testSourceConfig(delay time.Duration) *config.SourceConfig {
	return &config.SourceConfig{
		URL:                config.DefaultSourceURL,
		Timeout:            time.Second,
		RequestDelay:       delay,
		UserAgent:          "lottopick-test",
		BreakerMaxFailures: 3,
		BreakerTimeout:     time.Minute,
	}
}

// memoryStore is an in-memory HistoryStore.
type memoryStore struct {
	mu      sync.Mutex
	h       models.History
	saves   int
	loadErr error
	saveErr error
}

func (s *memoryStore) Load() (models.History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.h.Clone(), nil
}

func (s *memoryStore) Save(h models.History) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.h = h.Clone()
	s.saves++
	return nil
}

func (s *memoryStore) snapshot() (models.History, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Clone(), s.saves
}
