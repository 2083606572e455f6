// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick


package sync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/lottopick/internal/config"
	"github.com/tomtom215/lottopick/internal/logging"
	"github.com/tomtom215/lottopick/internal/metrics"
	"github.com/tomtom215/lottopick/internal/models"
)

// HistoryStore is the persistence the Manager loads from and saves to.
type HistoryStore interface {
	Load() (models.History, error)
	Save(models.History) error
}

// Run outcomes, as reported by Status and the sync_runs_total metric.
const (
	ResultSuccess           = "success"
	ResultUpToDate          = "up_to_date"
	ResultSourceUnavailable = "source_unavailable"
	ResultError             = "error"
)

// Status is a snapshot of the Manager's sync state.
type Status struct {
	Running     bool       `json:"running"`
	LastAttempt *time.Time `json:"last_attempt,omitempty"`
	LastResult  string     `json:"last_result,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	LastSync    *time.Time `json:"last_sync,omitempty"`
	LastReport  *Report    `json:"last_report,omitempty"`
}

// Manager runs load, sync and save as one unit, on demand, in the
// background or on a schedule.
//
// Thread Safety:
//   - syncMu: prevents concurrent sync runs
//   - mu: protects running, active, stopChan and the last-run fields
type Manager struct {
	store  HistoryStore
	syncer *Syncer
	cfg    *config.SyncConfig

	mu          sync.RWMutex
	running     bool
	active      int
	lastAttempt time.Time
	lastResult  string
	lastErr     error
	lastSync    time.Time
	lastReport  *Report

	syncMu   sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewManager creates a Manager.
func NewManager(store HistoryStore, syncer *Syncer, cfg *config.SyncConfig) *Manager {
	return &Manager{
		store:    store,
		syncer:   syncer,
		cfg:      cfg,
		stopChan: make(chan struct{}),
	}
}

// RunOnce loads the history, syncs it and saves the result when new rounds
// were fetched. Concurrent calls are serialised.
func (m *Manager) RunOnce(ctx context.Context) (*Report, error) {
	m.mu.Lock()
	m.active++
	m.mu.Unlock()

	return m.run(ctx)
}

// Trigger starts a run in the background and returns at once. It reports
// false, starting nothing, when a run is already in progress. The run is
// cancelled by ctx or by Stop, never by the caller returning.
func (m *Manager) Trigger(ctx context.Context) bool {
	m.mu.Lock()
	if m.active > 0 {
		m.mu.Unlock()
		return false
	}
	m.active++
	stop := m.stopChan
	m.mu.Unlock()

	go func() {
		runCtx, cancel := withStop(ctx, stop)
		defer cancel()
		if _, err := m.run(runCtx); err != nil {
			logging.Ctx(runCtx).Error().Err(err).Msg("Triggered sync failed")
		}
	}()
	return true
}

// run performs one sync. The caller has already counted it in m.active.
func (m *Manager) run(ctx context.Context) (*Report, error) {
	m.syncMu.Lock()
	defer m.syncMu.Unlock()

	if logging.CorrelationIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewCorrelationID(ctx)
	}
	start := time.Now()

	report, result, err := m.syncAndSave(ctx)

	fetched, skipped := 0, 0
	if report != nil {
		fetched, skipped = len(report.Fetched), len(report.Skipped)
	}
	metrics.RecordSyncRun(result, time.Since(start), fetched, skipped)

	m.mu.Lock()
	m.active--
	m.lastAttempt = time.Now()
	m.lastResult = result
	m.lastErr = err
	if err == nil {
		m.lastSync = m.lastAttempt
		m.lastReport = report
	}
	m.mu.Unlock()

	return report, err
}

func (m *Manager) syncAndSave(ctx context.Context) (*Report, string, error) {
	h, err := m.store.Load()
	if err != nil {
		return nil, ResultError, fmt.Errorf("load history: %w", err)
	}

	merged, report, err := m.syncer.Sync(ctx, h)
	if err != nil {
		if errors.Is(err, ErrSourceUnavailable) {
			return report, ResultSourceUnavailable, err
		}
		return report, ResultError, err
	}

	if len(report.Fetched) == 0 {
		return report, ResultUpToDate, nil
	}
	if err := m.store.Save(merged); err != nil {
		return report, ResultError, fmt.Errorf("save history: %w", err)
	}
	return report, ResultSuccess, nil
}

// Start begins the scheduled sync loop. When cfg.OnStartup is set a run
// starts immediately in the background.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return fmt.Errorf("sync manager is already running")
	}
	if m.cfg.Interval <= 0 {
		m.mu.Unlock()
		return fmt.Errorf("sync interval must be positive, got %v", m.cfg.Interval)
	}

	logging.Info().Dur("interval", m.cfg.Interval).Msg("Starting sync manager...")

	m.running = true
	m.stopChan = make(chan struct{})
	stop := m.stopChan
	m.mu.Unlock()

	// Add all goroutines to WaitGroup BEFORE starting them
	if m.cfg.OnStartup {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			m.runScheduled(ctx, stop)
		}()
	}

	m.wg.Add(1)
	go m.syncLoop(ctx, stop)

	return nil
}

// Stop ends the sync loop, cancels any in-flight run and waits for the
// scheduled goroutines to finish.
func (m *Manager) Stop() error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return fmt.Errorf("sync manager is not running")
	}
	m.running = false
	stop := m.stopChan
	m.mu.Unlock()

	logging.Info().Msg("Stopping sync manager...")

	close(stop)
	m.wg.Wait()
	logging.Info().Msg("Sync manager stopped")

	return nil
}

// LastSyncTime returns the timestamp of the last successful sync
func (m *Manager) LastSyncTime() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastSync
}

// LastReport returns the report of the last successful sync, or nil.
func (m *Manager) LastReport() *Report {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastReport
}

// Status returns a snapshot of the current and last runs.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Status{
		Running:    m.active > 0,
		LastResult: m.lastResult,
		LastReport: m.lastReport,
	}
	if !m.lastAttempt.IsZero() {
		t := m.lastAttempt
		s.LastAttempt = &t
	}
	if !m.lastSync.IsZero() {
		t := m.lastSync
		s.LastSync = &t
	}
	if m.lastErr != nil {
		s.LastError = m.lastErr.Error()
	}
	return s
}

func (m *Manager) syncLoop(ctx context.Context, stop <-chan struct{}) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			m.runScheduled(ctx, stop)
		}
	}
}

func (m *Manager) runScheduled(ctx context.Context, stop <-chan struct{}) {
	runCtx, cancel := withStop(ctx, stop)
	defer cancel()

	if _, err := m.RunOnce(runCtx); err != nil {
		logging.Error().Err(err).Msg("Scheduled sync failed")
	}
}

// withStop returns a child of ctx that is also cancelled when stop closes.
func withStop(ctx context.Context, stop <-chan struct{}) (context.Context, context.CancelFunc) {
	runCtx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-stop:
			cancel()
		case <-runCtx.Done():
		}
	}()
	return runCtx, cancel
}
