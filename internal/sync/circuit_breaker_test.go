// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package sync

import (
	"context"
	"errors"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerSource_PassesThrough(t *testing.T) {
	src := newFakeSource(3)
	b := NewBreakerSource(src, testSourceConfig(0))

	round, err := b.LatestRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, round)

	d, err := b.FetchRound(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, drawForRound(2), d)
	assert.Equal(t, "closed", b.State())
}

func TestBreakerSource_OpensAfterConsecutiveFailures(t *testing.T) {
	src := newFakeSource(3)
	src.latestErr = errors.New("connection refused")
	b := NewBreakerSource(src, testSourceConfig(0)) // trips after 3

	for i := 0; i < 3; i++ {
		_, err := b.LatestRound(context.Background())
		require.Error(t, err)
		assert.False(t, errors.Is(err, gobreaker.ErrOpenState))
	}
	assert.Equal(t, "open", b.State())

	_, err := b.LatestRound(context.Background())
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, 3, src.latestCalls, "open circuit does not reach the source")
}

func TestBreakerSource_MalformedPagesDoNotTrip(t *testing.T) {
	src := newFakeSource(3)
	src.draws = nil
	b := NewBreakerSource(src, testSourceConfig(0))

	for i := 0; i < 5; i++ {
		_, err := b.FetchRound(context.Background(), 10+i)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedPage))
	}
	assert.Equal(t, "closed", b.State())
	assert.Len(t, src.fetchedRounds(), 5)
}

func TestSync_OpenBreakerSkipsRemainingRounds(t *testing.T) {
	src := newFakeSource(10)
	for r := 8; r <= 10; r++ {
		src.failing[r] = true
	}
	s := NewSyncer(NewBreakerSource(src, testSourceConfig(0)), testSourceConfig(0))

	local := historyUpTo(5)
	merged, report, err := s.Sync(context.Background(), local)
	require.NoError(t, err, "per-round failures never abort a run")

	assert.Equal(t, []int{10, 9, 8}, src.fetchedRounds())
	assert.Equal(t, []int{10, 9, 8, 7, 6}, report.Skipped)
	assert.Empty(t, report.Fetched)
	assert.Equal(t, local, merged)
}

func TestSync_OpenBreakerOnLatestIsSourceUnavailable(t *testing.T) {
	src := newFakeSource(10)
	src.latestErr = errors.New("dns failure")
	b := NewBreakerSource(src, testSourceConfig(0))
	s := NewSyncer(b, testSourceConfig(0))

	for i := 0; i < 4; i++ {
		_, _, err := s.Sync(context.Background(), historyUpTo(2))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSourceUnavailable))
	}
	assert.Equal(t, "open", b.State())
}

func TestSync_OpenBreakerShiftsSavedRoundEstimate(t *testing.T) {
	src := newFakeSource(12)
	for r := 9; r <= 11; r++ {
		src.failing[r] = true
	}
	s := NewSyncer(NewBreakerSource(src, testSourceConfig(0)), testSourceConfig(0))

	merged, report, err := s.Sync(context.Background(), historyUpTo(5))
	require.NoError(t, err)

	// 12 succeeds, 11..9 trip the breaker, 8..6 are skipped without a request.
	assert.Equal(t, []int{12, 11, 10, 9}, src.fetchedRounds())
	assert.Equal(t, []int{12}, report.Fetched)
	assert.Equal(t, []int{11, 10, 9, 8, 7, 6}, report.Skipped)

	// Round 12 is stored, but the estimate counts draws, so it lags by one
	// round per skip and the next run starts from round 7.
	assert.Equal(t, 6, SavedRoundEstimate(merged))
	assert.Equal(t, drawForRound(12), merged[0])
}
