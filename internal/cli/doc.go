// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

// Package cli implements the lottopick command line.
//
// Commands:
//
//	lottopick sync                  fetch rounds missing from the history file
//	lottopick recommend [-n COUNT]  print recommendations with statistics and analysis
//	lottopick stats                 print the frequency report
//	lottopick serve                 run the HTTP API and the scheduled sync
//
// Global flags select the config file (--config), the output format
// (--format text|json) and the log level (--log-level). Logs go to stderr so
// JSON output on stdout stays parseable.
package cli
