// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

// Package logging provides centralized zerolog-based structured logging for Lottopick.
//
// JSON output is the default (machine-parseable, suitable for scheduled sync
// runs under a process supervisor); console output is available for
// interactive use of the CLI.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Int("latest_round", 1190).Msg("Sync started")
//	logging.Warn().Int("round", 1187).Err(err).Msg("Round fetch failed, skipping")
//
//	// Per-run correlation
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Info().Msg("Fetching round")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// # slog Integration
//
// NewSlogLogger returns a *slog.Logger backed by the global zerolog logger,
// used by the suture supervisor event hook.
package logging
