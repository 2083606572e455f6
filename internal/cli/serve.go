// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package cli

import (
	"context"
	"errors"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/lottopick/internal/api"
	"github.com/tomtom215/lottopick/internal/logging"
	"github.com/tomtom215/lottopick/internal/supervisor"
	"github.com/tomtom215/lottopick/internal/supervisor/services"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), rootOpts)
		},
	}
}

func runServe(ctx context.Context, opts *RootOptions) error {
	a := newApp(opts.Config())
	cfg := a.cfg

	sampler, err := a.sampler()
	if err != nil {
		return err
	}
	manager, err := a.syncManager()
	if err != nil {
		return err
	}

	handler := api.NewHandler(a.store, sampler, manager, api.HandlerConfig{
		DefaultCount: cfg.Recommend.Count,
		HotColdSize:  cfg.Recommend.HotColdSize,
		Version:      opts.Version,
	})
	router := api.NewRouter(handler, api.RouterConfig{
		RateLimitRequests: cfg.Server.RateLimitRequests,
		RateLimitWindow:   cfg.Server.RateLimitWindow,
	})

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := services.NewAPIServer(addr, router.Setup())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	if cfg.Sync.Enabled {
		tree.AddSyncService(services.NewSyncService(manager))
	} else {
		logging.Info().Msg("Scheduled sync disabled; POST /api/v1/sync still available")
	}

	logging.Info().
		Str("addr", addr).
		Str("data_file", cfg.Data.File).
		Bool("sync_enabled", cfg.Sync.Enabled).
		Msg("Starting lottopick server")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logging.Info().Msg("Server stopped")
	return nil
}
