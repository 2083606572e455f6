// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

// Package validation provides struct and value validation using go-playground/validator v10.
//
// A single validator instance is created lazily and shared, so struct metadata
// is cached across calls. Failures are translated into short human-readable
// messages that the CLI prints and the API returns in its error envelope.
//
// # Usage
//
//	if verr := validation.ValidateNumbers(draw[:], 6, 1, 45); verr != nil {
//	    return fmt.Errorf("bad draw: %s", verr.Error())
//	}
//
//	if verr := validation.ValidateVar("count", n, "gte=1,lte=10"); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400
//	}
package validation
