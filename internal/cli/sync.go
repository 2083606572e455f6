// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package cli

import (
	"github.com/spf13/cobra"
)

// NewSyncCommand creates the sync command.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch rounds missing from the history file",
		Long: `Ask the results page for the latest round, fetch every round newer than
the stored count one at a time, and prepend them to the history file.
Rounds that cannot be fetched are skipped and reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(rootOpts.Config())

			manager, err := a.syncManager()
			if err != nil {
				return err
			}
			report, err := manager.RunOnce(cmd.Context())
			if err != nil {
				return err
			}

			out := rootOpts.formatter(cmd)
			if out.IsJSON() {
				return out.JSON(report)
			}
			renderSyncReport(out.Writer, report)
			return nil
		},
	}
}
