// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/lottopick/internal/stats"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print per-number frequencies of the stored history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(rootOpts.Config())

			hist, err := a.store.LoadForAnalysis()
			if err != nil {
				return err
			}
			rep := stats.NewFrequencyReport(stats.Analyze(hist), a.cfg.Recommend.HotColdSize)

			out := rootOpts.formatter(cmd)
			if out.IsJSON() {
				return out.JSON(rep)
			}
			renderStats(out.Writer, rep)
			return nil
		},
	}
}
