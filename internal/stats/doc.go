// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

// Package stats derives frequency statistics from a lotto History.
//
// Analyze flattens every Draw and counts occurrences per number, covering the
// whole number domain (numbers never drawn count as zero). The resulting
// FrequencyTable ranks numbers by descending count; equal counts keep the
// order in which numbers first appeared in the History (newest draw first),
// with never-drawn numbers last in ascending order. That ranking drives the
// tier partition used by the recommendation engine and the hot/cold lists
// used for reporting.
//
// Section and ConsecutiveRunLength are the pure helpers the recommendation
// filters are built on.
//
// All functions are pure and safe for concurrent use.
package stats
