// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package init, so any package can record without wiring.

# Metrics Endpoint

Metrics are exposed at /metrics when the API server runs:

	curl http://localhost:8645/metrics

# Available Metrics

Sync Metrics:
  - sync_runs_total: Sync runs by outcome (counter). Labels: result
  - sync_duration_seconds: Sync run duration (histogram)
  - sync_rounds_fetched_total: Rounds fetched and merged (counter)
  - sync_rounds_skipped_total: Rounds that failed to fetch and were skipped (counter)
  - sync_round_fetch_duration_seconds: Per-round fetch latency (histogram)
  - sync_latest_remote_round: Latest round reported by the results page (gauge)
  - sync_last_success_timestamp: Unix time of the last successful run (gauge)

History Metrics:
  - history_draws: Draws currently persisted (gauge)

Recommendation Metrics:
  - recommend_attempts_total: Sampling attempts consumed (counter)
  - recommend_rejections_total: Rejected candidates (counter). Labels: reason
  - recommend_accepted_total: Accepted combinations (counter)
  - recommend_short_results_total: Runs that exhausted the attempt budget (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge). Labels: name
  - circuit_breaker_requests_total: Labels: name, result
  - circuit_breaker_consecutive_failures: Labels: name
  - circuit_breaker_state_transitions_total: Labels: name, from_state, to_state

API Metrics:
  - api_requests_total: Labels: method, endpoint, status_code
  - api_request_duration_seconds: Labels: method, endpoint
*/
package metrics
