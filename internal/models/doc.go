// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

// Package models defines the lotto domain types shared across packages.
//
// A Draw is one recorded set of winning numbers, a History is the ordered
// list of Draws (most recent first) and a Combination is a sorted set of
// numbers produced by the recommendation engine.
//
// The number domain (1..45, six numbers per draw) is fixed by the game and
// is expressed as package constants rather than configuration.
package models
