// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/lottopick/internal/cache"
	"github.com/tomtom215/lottopick/internal/history"
	"github.com/tomtom215/lottopick/internal/metrics"
	"github.com/tomtom215/lottopick/internal/models"
	"github.com/tomtom215/lottopick/internal/recommend"
	"github.com/tomtom215/lottopick/internal/stats"
	lottosync "github.com/tomtom215/lottopick/internal/sync"
	"github.com/tomtom215/lottopick/internal/validation"
)

// HistoryReader is the part of history.Store the handlers need.
type HistoryReader interface {
	LoadForAnalysis() (models.History, error)
	AppendCount() (int, error)
	Version() (string, error)
}

// SyncRunner starts background syncs and reports on them. *sync.Manager
// satisfies it.
type SyncRunner interface {
	Trigger(ctx context.Context) bool
	Status() lottosync.Status
	LastSyncTime() time.Time
}

const syncStatusPath = "/api/v1/sync"

// HandlerConfig holds the request defaults.
type HandlerConfig struct {
	DefaultCount int
	HotColdSize  int
	Version      string

	// TableCacheTTL bounds how long an analysed history is reused.
	// Zero means 10 minutes.
	TableCacheTTL time.Duration
}

// Handler serves the HTTP endpoints.
type Handler struct {
	store     HistoryReader
	sampler   *recommend.Sampler
	syncer    SyncRunner
	config    HandlerConfig
	tables    *cache.Cache[*stats.FrequencyTable]
	startTime time.Time
}

// NewHandler creates a Handler. syncer may be nil, in which case the /sync
// endpoints answer 503.
func NewHandler(store HistoryReader, sampler *recommend.Sampler, syncer SyncRunner, cfg HandlerConfig) *Handler {
	if cfg.TableCacheTTL <= 0 {
		cfg.TableCacheTTL = 10 * time.Minute
	}
	return &Handler{
		store:     store,
		sampler:   sampler,
		syncer:    syncer,
		config:    cfg,
		tables:    cache.New[*stats.FrequencyTable](cfg.TableCacheTTL),
		startTime: time.Now(),
	}
}

// HealthResponse is the payload of GET /api/v1/health.
type HealthResponse struct {
	Status   string     `json:"status"`
	Version  string     `json:"version,omitempty"`
	Draws    int        `json:"draws"`
	LastSync *time.Time `json:"last_sync,omitempty"`
	Uptime   float64    `json:"uptime_seconds"`
}

// Health reports liveness and whether any history is stored.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	draws, err := h.store.AppendCount()
	if err != nil {
		rw.InternalError("Failed to read history", err)
		return
	}

	status := "healthy"
	if draws == 0 {
		status = "degraded" // Nothing to analyse until the first sync
	}

	resp := HealthResponse{
		Status:  status,
		Version: h.config.Version,
		Draws:   draws,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	if h.syncer != nil {
		if last := h.syncer.LastSyncTime(); !last.IsZero() {
			resp.LastSync = &last
		}
	}

	rw.Success(resp)
}

// RecommendationsResponse is the payload of GET /api/v1/recommendations.
type RecommendationsResponse struct {
	Recommendations []stats.Analysis `json:"recommendations"`
	Requested       int              `json:"requested"`
	Attempts        int              `json:"attempts"`
	Exhausted       bool             `json:"exhausted"`
	Draws           int              `json:"draws"`
	Rationale       []string         `json:"rationale"`
}

// Recommendations samples ?count=N combinations (default from config).
// count=0 is valid and yields an empty list.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	count := h.config.DefaultCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			rw.BadRequest(fmt.Sprintf("count must be an integer, got %q", raw))
			return
		}
		count = n
	}

	maxCount := h.sampler.Config().MaxCount
	if verr := validation.ValidateVar("count", count, fmt.Sprintf("gte=0,lte=%d", maxCount)); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	table, ok := h.loadTable(rw)
	if !ok {
		return
	}

	res, err := h.sampler.Recommend(table, count)
	if err != nil {
		rw.InternalError("Failed to generate recommendations", err)
		return
	}

	resp := RecommendationsResponse{
		Recommendations: make([]stats.Analysis, 0, len(res.Combinations)),
		Requested:       res.Requested,
		Attempts:        res.Attempts,
		Exhausted:       res.Exhausted,
		Draws:           table.Draws(),
		Rationale:       h.sampler.Config().Rationale(),
	}
	for _, c := range res.Combinations {
		resp.Recommendations = append(resp.Recommendations, stats.Describe(c, table, h.config.HotColdSize))
	}

	rw.Success(resp)
}

// Frequencies returns the frequency report.
func (h *Handler) Frequencies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	table, ok := h.loadTable(rw)
	if !ok {
		return
	}

	rw.Success(stats.NewFrequencyReport(table, h.config.HotColdSize))
}

// SyncAcceptedResponse is the payload of POST /api/v1/sync.
type SyncAcceptedResponse struct {
	// Started is false when a run was already in progress.
	Started bool             `json:"started"`
	Status  lottosync.Status `json:"status"`
}

// TriggerSync starts a background sync and answers 202 with a Location
// pointing at the status endpoint. The run outlives the request.
func (h *Handler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.syncer == nil {
		rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Sync is not configured")
		return
	}

	started := h.syncer.Trigger(context.WithoutCancel(r.Context()))
	w.Header().Set("Location", syncStatusPath)
	rw.Accepted(SyncAcceptedResponse{
		Started: started,
		Status:  h.syncer.Status(),
	})
}

// SyncStatus reports whether a sync is running and how the last one ended.
func (h *Handler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.syncer == nil {
		rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Sync is not configured")
		return
	}

	rw.Success(h.syncer.Status())
}

// loadTable returns the frequency table of the stored history, reusing the
// cached analysis while the history file is unchanged. It writes the error
// response itself and reports false when there is nothing to analyse.
func (h *Handler) loadTable(rw *ResponseWriter) (*stats.FrequencyTable, bool) {
	version, err := h.store.Version()
	if err != nil {
		rw.InternalError("Failed to read history", err)
		return nil, false
	}
	key := cache.GenerateKey("frequency", version)
	if table, ok := h.tables.Get(key); ok {
		metrics.FrequencyCacheLookups.WithLabelValues("hit").Inc()
		return table, true
	}
	metrics.FrequencyCacheLookups.WithLabelValues("miss").Inc()

	hist, err := h.store.LoadForAnalysis()
	if err != nil {
		if errors.Is(err, history.ErrDataUnavailable) {
			rw.NoData("No draw history stored yet; run a sync first")
			return nil, false
		}
		rw.InternalError("Failed to load history", err)
		return nil, false
	}

	table := stats.Analyze(hist)
	h.tables.Set(key, table)
	return table, true
}
