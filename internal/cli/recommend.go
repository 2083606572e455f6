// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/lottopick/internal/stats"
)

// NewRecommendCommand creates the recommend command.
func NewRecommendCommand(rootOpts *RootOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend combinations from the stored history",
		Long: `Sample combinations biased by frequency tier and keep those that pass the
odd/even, consecutive, section and sum filters. Prints the frequency
statistics and a per-combination analysis alongside the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config()
			if !cmd.Flags().Changed("count") {
				count = cfg.Recommend.Count
			}
			if count < 0 || count > cfg.Recommend.MaxCount {
				return fmt.Errorf("count must be between 0 and %d, got %d", cfg.Recommend.MaxCount, count)
			}
			return runRecommend(rootOpts, cmd, count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of combinations (default recommend.count)")
	return cmd
}

func runRecommend(opts *RootOptions, cmd *cobra.Command, count int) error {
	a := newApp(opts.Config())

	hist, err := a.store.LoadForAnalysis()
	if err != nil {
		return err
	}
	table := stats.Analyze(hist)

	sampler, err := a.sampler()
	if err != nil {
		return err
	}
	res, err := sampler.Recommend(table, count)
	if err != nil {
		return err
	}

	rep := NewRecommendationReport(res, table, sampler.Config().Rationale(), a.cfg.Recommend.HotColdSize)

	out := opts.formatter(cmd)
	if out.IsJSON() {
		return out.JSON(rep)
	}
	renderRecommendations(out.Writer, rep)
	return nil
}
