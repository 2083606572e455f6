// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Sync Metrics
	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_runs_total",
			Help: "Total number of sync runs by result",
		},
		[]string{"result"}, // "success", "up_to_date", "source_unavailable", "error"
	)

	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sync_duration_seconds",
			Help:    "Duration of sync runs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 300, 900, 3600}, // One round per politeness delay
		},
	)

	SyncRoundsFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sync_rounds_fetched_total",
			Help: "Total number of rounds fetched and merged into history",
		},
	)

	SyncRoundsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sync_rounds_skipped_total",
			Help: "Total number of rounds that failed to fetch and were skipped",
		},
	)

	SyncRoundFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sync_round_fetch_duration_seconds",
			Help:    "Duration of single round fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	SyncLatestRemoteRound = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sync_latest_remote_round",
			Help: "Latest round number reported by the results page",
		},
	)

	SyncLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sync_last_success_timestamp",
			Help: "Unix timestamp of last successful sync",
		},
	)

	// History Metrics
	HistoryDraws = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "history_draws",
			Help: "Number of draws currently persisted",
		},
	)

	// Recommendation Metrics
	RecommendAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_attempts_total",
			Help: "Total number of sampling attempts consumed",
		},
	)

	RecommendRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_rejections_total",
			Help: "Total number of rejected candidate combinations",
		},
		[]string{"reason"}, // "odd_even", "consecutive", "sections", "sum", "duplicate"
	)

	RecommendAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_accepted_total",
			Help: "Total number of accepted combinations",
		},
	)

	RecommendShortResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_short_results_total",
			Help: "Total number of runs that exhausted the attempt budget before the requested count",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Endpoint Metrics
	FrequencyCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frequency_cache_lookups_total",
			Help: "Frequency table cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordSyncRun records the outcome of one sync run.
func RecordSyncRun(result string, duration time.Duration, fetched, skipped int) {
	SyncRuns.WithLabelValues(result).Inc()
	SyncDuration.Observe(duration.Seconds())
	SyncRoundsFetched.Add(float64(fetched))
	SyncRoundsSkipped.Add(float64(skipped))
	if result == "success" || result == "up_to_date" {
		SyncLastSuccess.Set(float64(time.Now().Unix()))
	}
}

// RecordRoundFetch records the latency of a single round fetch.
func RecordRoundFetch(duration time.Duration) {
	SyncRoundFetchDuration.Observe(duration.Seconds())
}

// RecordRecommendation records one sampler run.
func RecordRecommendation(attempts, accepted int, rejections map[string]int, short bool) {
	RecommendAttempts.Add(float64(attempts))
	RecommendAccepted.Add(float64(accepted))
	for reason, n := range rejections {
		RecommendRejections.WithLabelValues(reason).Add(float64(n))
	}
	if short {
		RecommendShortResults.Inc()
	}
}
