// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

// Package main is the entry point for lottopick.
//
// lottopick keeps a local CSV history of winning draws, scraped one round at
// a time from the official results page, and recommends combinations that
// pass a set of frequency and pattern filters.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (LOTTO_DATA_FILE, LOTTO_SOURCE_URL, HTTP_PORT, ...)
//   - Config file (lottopick.yaml, config.yaml, or $CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the command context: a running sync stops after
// the current round and saves nothing, and serve shuts the API down gracefully.
//
// # Example Usage
//
//	lottopick sync
//	lottopick recommend -n 5
//	lottopick stats --format json
//	HTTP_PORT=8645 lottopick serve
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/lottopick/internal/cli"
)

// Set via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "lottopick: %v\n", err)
		stop()
		os.Exit(1)
	}
}
