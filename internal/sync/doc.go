// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

/*
Package sync brings the local draw history up to date with the official
results page.

# Components

  - Source: the remote collaborator (LatestRound, FetchRound)
  - HTTPSource: scrapes the results page with goquery
  - BreakerSource: wraps a Source with a sony/gobreaker circuit breaker
  - Syncer: walks missing rounds newest to oldest and prepends them
  - Manager: load, sync and save in one run, optionally on a schedule

# Round Estimate

The history file stores no round numbers. The last saved round is taken to
be the number of stored draws, which assumes rounds were synced contiguously
from round 1. A round that failed to fetch in an earlier run shifts every
later estimate by one; this is reproduced as-is.

# Pacing

Requests are paced by a golang.org/x/time/rate limiter with one token per
RequestDelay, so consecutive round fetches are at least RequestDelay apart.

# Errors

  - ErrSourceUnavailable: the latest round lookup failed; the run aborts
  - ErrFetchFailed: one round could not be fetched; the round is skipped
*/
package sync
