// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

/*
Package api serves draw statistics and recommendations over HTTP using the
Chi router.

# Endpoints

	GET  /api/v1/health                   liveness, stored draw count, last sync
	GET  /api/v1/recommendations?count=N  N constraint-checked combinations
	GET  /api/v1/frequencies              top/bottom lists and the full table
	POST /api/v1/sync                     start a background sync (202, Location: /api/v1/sync)
	GET  /api/v1/sync                     running flag and outcome of the last sync
	GET  /metrics                         Prometheus metrics

Every JSON response uses the APIResponse envelope. Requests under /api/v1
are rate limited per client IP with go-chi/httprate and tagged with a
request ID for log correlation. Responses are gzipped when the client
accepts it.

The analysed frequency table is cached per history file version, so
repeated requests reuse it until a sync rewrites the file.
*/
package api
