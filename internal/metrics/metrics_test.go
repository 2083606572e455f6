// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordSyncRun(t *testing.T) {
	beforeRuns := testutil.ToFloat64(SyncRuns.WithLabelValues("success"))
	beforeFetched := testutil.ToFloat64(SyncRoundsFetched)
	beforeSkipped := testutil.ToFloat64(SyncRoundsSkipped)

	RecordSyncRun("success", 2*time.Second, 3, 1)

	if got := testutil.ToFloat64(SyncRuns.WithLabelValues("success")) - beforeRuns; got != 1 {
		t.Errorf("sync_runs_total{result=success} delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(SyncRoundsFetched) - beforeFetched; got != 3 {
		t.Errorf("sync_rounds_fetched_total delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(SyncRoundsSkipped) - beforeSkipped; got != 1 {
		t.Errorf("sync_rounds_skipped_total delta = %v, want 1", got)
	}
	if testutil.ToFloat64(SyncLastSuccess) == 0 {
		t.Error("sync_last_success_timestamp not set after successful run")
	}
}

func TestRecordRecommendation(t *testing.T) {
	beforeAttempts := testutil.ToFloat64(RecommendAttempts)
	beforeSum := testutil.ToFloat64(RecommendRejections.WithLabelValues("sum"))
	beforeShort := testutil.ToFloat64(RecommendShortResults)

	RecordRecommendation(12, 2, map[string]int{"sum": 7, "odd_even": 3}, true)

	if got := testutil.ToFloat64(RecommendAttempts) - beforeAttempts; got != 12 {
		t.Errorf("recommend_attempts_total delta = %v, want 12", got)
	}
	if got := testutil.ToFloat64(RecommendRejections.WithLabelValues("sum")) - beforeSum; got != 7 {
		t.Errorf("recommend_rejections_total{reason=sum} delta = %v, want 7", got)
	}
	if got := testutil.ToFloat64(RecommendShortResults) - beforeShort; got != 1 {
		t.Errorf("recommend_short_results_total delta = %v, want 1", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/frequencies", "200"))

	RecordAPIRequest("GET", "/api/v1/frequencies", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/frequencies", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}
