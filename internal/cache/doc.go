// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

// Package cache provides a small generic in-memory cache with per-entry TTL.
//
// The API server keeps the frequency table of the stored history here, keyed
// by the history file's version, so repeated requests skip reparsing the CSV
// until a sync rewrites it.
//
//	tables := cache.New[*stats.FrequencyTable](time.Minute)
//	if t, ok := tables.Get(key); ok {
//	    return t
//	}
package cache
