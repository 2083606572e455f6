// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package sync

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/lottopick/internal/config"
	"github.com/tomtom215/lottopick/internal/history"
)

func TestManager_RunOnceSavesMergedHistory(t *testing.T) {
	store := &memoryStore{h: historyUpTo(3)}
	src := newFakeSource(6)
	m := NewManager(store, NewSyncer(src, testSourceConfig(0)), &config.SyncConfig{Interval: time.Hour})

	report, err := m.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{6, 5, 4}, report.Fetched)

	h, saves := store.snapshot()
	assert.Equal(t, 1, saves)
	assert.Equal(t, historyUpTo(6), h)
	assert.False(t, m.LastSyncTime().IsZero())
	assert.Same(t, report, m.LastReport())
}

func TestManager_RunOnceUpToDateDoesNotSave(t *testing.T) {
	store := &memoryStore{h: historyUpTo(4)}
	m := NewManager(store, NewSyncer(newFakeSource(4), testSourceConfig(0)), &config.SyncConfig{Interval: time.Hour})

	report, err := m.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, report.UpToDate())

	_, saves := store.snapshot()
	assert.Equal(t, 0, saves)
}

func TestManager_RunOnceErrors(t *testing.T) {
	t.Run("load failure", func(t *testing.T) {
		store := &memoryStore{loadErr: history.ErrCorruptRecord}
		m := NewManager(store, NewSyncer(newFakeSource(1), testSourceConfig(0)), &config.SyncConfig{})
		_, err := m.RunOnce(context.Background())
		assert.True(t, errors.Is(err, history.ErrCorruptRecord))
	})

	t.Run("source unavailable", func(t *testing.T) {
		src := newFakeSource(1)
		src.latestErr = errors.New("down")
		store := &memoryStore{h: historyUpTo(1)}
		m := NewManager(store, NewSyncer(src, testSourceConfig(0)), &config.SyncConfig{})
		_, err := m.RunOnce(context.Background())
		assert.True(t, errors.Is(err, ErrSourceUnavailable))
		assert.True(t, m.LastSyncTime().IsZero())
	})

	t.Run("save failure", func(t *testing.T) {
		saveErr := errors.New("disk full")
		store := &memoryStore{h: historyUpTo(1), saveErr: saveErr}
		m := NewManager(store, NewSyncer(newFakeSource(2), testSourceConfig(0)), &config.SyncConfig{})
		_, err := m.RunOnce(context.Background())
		assert.True(t, errors.Is(err, saveErr))
	})
}

func TestManager_WithFileStore(t *testing.T) {
	store := history.NewStore(filepath.Join(t.TempDir(), "draws.csv"))
	m := NewManager(store, NewSyncer(newFakeSource(3), testSourceConfig(0)), &config.SyncConfig{})

	_, err := m.RunOnce(context.Background())
	require.NoError(t, err)

	h, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, historyUpTo(3), h)

	// A second run finds nothing new.
	report, err := m.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, report.UpToDate())
}

func TestManager_StartStop(t *testing.T) {
	store := &memoryStore{h: historyUpTo(1)}
	src := newFakeSource(3)
	cfg := &config.SyncConfig{Enabled: true, Interval: 20 * time.Millisecond, OnStartup: true}
	m := NewManager(store, NewSyncer(src, testSourceConfig(0)), cfg)

	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Start(context.Background()), "second start fails")

	require.Eventually(t, func() bool {
		h, _ := store.snapshot()
		return len(h) == 3
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.Error(t, m.Stop(), "second stop fails")

	// Restart works after a stop.
	require.NoError(t, m.Start(context.Background()))
	require.NoError(t, m.Stop())
}

func TestManager_StartRejectsZeroInterval(t *testing.T) {
	m := NewManager(&memoryStore{}, NewSyncer(newFakeSource(1), testSourceConfig(0)), &config.SyncConfig{})
	assert.Error(t, m.Start(context.Background()))
}

// gatedSource blocks LatestRound until release is closed.
type gatedSource struct {
	*fakeSource
	entered chan struct{}
	release chan struct{}
}

func newGatedSource(latest int) *gatedSource {
	return &gatedSource{
		fakeSource: newFakeSource(latest),
		entered:    make(chan struct{}, 1),
		release:    make(chan struct{}),
	}
}

func (g *gatedSource) LatestRound(ctx context.Context) (int, error) {
	select {
	case g.entered <- struct{}{}:
	default:
	}
	select {
	case <-g.release:
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	return g.fakeSource.LatestRound(ctx)
}

func TestManager_TriggerRunsInBackground(t *testing.T) {
	store := &memoryStore{h: historyUpTo(2)}
	src := newGatedSource(5)
	m := NewManager(store, NewSyncer(src, testSourceConfig(0)), &config.SyncConfig{})

	assert.Empty(t, m.Status().LastResult)
	require.True(t, m.Trigger(context.Background()))

	select {
	case <-src.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("triggered run did not start")
	}
	assert.True(t, m.Status().Running)
	assert.False(t, m.Trigger(context.Background()), "second trigger while running starts nothing")

	close(src.release)
	require.Eventually(t, func() bool {
		return !m.Status().Running
	}, 2*time.Second, 10*time.Millisecond)

	status := m.Status()
	assert.Equal(t, ResultSuccess, status.LastResult)
	assert.Empty(t, status.LastError)
	require.NotNil(t, status.LastSync)
	require.NotNil(t, status.LastReport)
	assert.Equal(t, []int{5, 4, 3}, status.LastReport.Fetched)

	h, saves := store.snapshot()
	assert.Equal(t, 1, saves)
	assert.Equal(t, historyUpTo(5), h)
}

func TestManager_TriggerRecordsFailure(t *testing.T) {
	src := newFakeSource(3)
	src.latestErr = errors.New("maintenance")
	m := NewManager(&memoryStore{h: historyUpTo(1)}, NewSyncer(src, testSourceConfig(0)), &config.SyncConfig{})

	require.True(t, m.Trigger(context.Background()))
	require.Eventually(t, func() bool {
		return m.Status().LastResult != ""
	}, 2*time.Second, 10*time.Millisecond)

	status := m.Status()
	assert.False(t, status.Running)
	assert.Equal(t, ResultSourceUnavailable, status.LastResult)
	assert.Contains(t, status.LastError, "maintenance")
	assert.NotNil(t, status.LastAttempt)
	assert.Nil(t, status.LastSync)
}

func TestManager_StopCancelsTriggeredRun(t *testing.T) {
	src := newGatedSource(5)
	m := NewManager(&memoryStore{h: historyUpTo(2)}, NewSyncer(src, testSourceConfig(0)),
		&config.SyncConfig{Interval: time.Hour})
	require.NoError(t, m.Start(context.Background()))

	require.True(t, m.Trigger(context.Background()))
	<-src.entered
	require.NoError(t, m.Stop())

	require.Eventually(t, func() bool {
		return !m.Status().Running
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, ResultSourceUnavailable, m.Status().LastResult)
}
