// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package sync

import (
	"context"
	"errors"

	"github.com/tomtom215/lottopick/internal/models"
)

var (
	// ErrSourceUnavailable is returned when the latest round cannot be determined.
	ErrSourceUnavailable = errors.New("results source unavailable")

	// ErrFetchFailed is returned when a single round cannot be fetched.
	ErrFetchFailed = errors.New("round fetch failed")

	// ErrMalformedPage is returned when a page lacks the expected elements.
	ErrMalformedPage = errors.New("unexpected page structure")
)

// MaxRound is the largest round number accepted from a source. Anything
// above it is treated as a malformed page.
const MaxRound = 1_000_000

// Source is the remote results provider.
//
// Implementations must bound each call with a timeout; a timeout is an
// ordinary failure.
type Source interface {
	// LatestRound returns the most recent published round number.
	LatestRound(ctx context.Context) (int, error)

	// FetchRound returns the six winning numbers of round.
	FetchRound(ctx context.Context, round int) (models.Draw, error)
}
