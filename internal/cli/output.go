// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lottopick/internal/recommend"
	"github.com/tomtom215/lottopick/internal/stats"
	lottosync "github.com/tomtom215/lottopick/internal/sync"
)

// OutputFormatter writes command results as text or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// IsJSON reports whether JSON output was requested.
func (f *OutputFormatter) IsJSON() bool {
	return f.Format == "json"
}

// JSON writes v as indented JSON followed by a newline.
func (f *OutputFormatter) JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')
	_, err = f.Writer.Write(data)
	return err
}

// RecommendationReport is everything the recommend command prints.
type RecommendationReport struct {
	Recommendations []stats.Analysis      `json:"recommendations"`
	Requested       int                   `json:"requested"`
	Attempts        int                   `json:"attempts"`
	Exhausted       bool                  `json:"exhausted"`
	Rationale       []string              `json:"rationale"`
	Statistics      stats.FrequencyReport `json:"statistics"`
}

// NewRecommendationReport describes res against table.
func NewRecommendationReport(res *recommend.Result, table *stats.FrequencyTable, rationale []string, hotColdSize int) RecommendationReport {
	rep := RecommendationReport{
		Recommendations: make([]stats.Analysis, 0, len(res.Combinations)),
		Requested:       res.Requested,
		Attempts:        res.Attempts,
		Exhausted:       res.Exhausted,
		Rationale:       rationale,
		Statistics:      stats.NewFrequencyReport(table, hotColdSize),
	}
	for _, c := range res.Combinations {
		rep.Recommendations = append(rep.Recommendations, stats.Describe(c, table, hotColdSize))
	}
	return rep
}

// renderRecommendations prints the combinations, the frequency statistics
// and the per-combination analysis, in that order.
func renderRecommendations(w io.Writer, rep RecommendationReport) {
	fmt.Fprintln(w, "--- Recommendations ---")
	for i, a := range rep.Recommendations {
		fmt.Fprintf(w, "%d: %s\n", i+1, joinInts(a.Numbers))
	}
	if len(rep.Recommendations) < rep.Requested {
		fmt.Fprintf(w, "only %d of %d combinations passed the filters after %d attempts\n",
			len(rep.Recommendations), rep.Requested, rep.Attempts)
	}

	fmt.Fprintln(w)
	renderStats(w, rep.Statistics)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Analysis ---")
	fmt.Fprintln(w, "Every combination satisfies:")
	for _, line := range rep.Rationale {
		fmt.Fprintf(w, "- %s\n", line)
	}
	for i, a := range rep.Recommendations {
		fmt.Fprintf(w, "%d: frequencies %v, sum %d, odd %d, even %d, hot %d, cold %d, sections %v, consecutive %d\n",
			i+1, a.Frequencies, a.Sum, a.Odd, a.Even, a.Hot, a.Cold, a.Sections, a.ConsecutiveRun)
	}
}

// renderStats prints the top and bottom lists and the full table, ten
// numbers per row.
func renderStats(w io.Writer, rep stats.FrequencyReport) {
	fmt.Fprintf(w, "Draws analysed: %d\n", rep.Draws)

	fmt.Fprintf(w, "\n--- Top %d by frequency ---\n", len(rep.Top))
	for _, e := range rep.Top {
		fmt.Fprintf(w, "%d: %d\n", e.Number, e.Count)
	}

	fmt.Fprintf(w, "\n--- Bottom %d by frequency ---\n", len(rep.Bottom))
	for _, e := range rep.Bottom {
		fmt.Fprintf(w, "%d: %d\n", e.Number, e.Count)
	}

	fmt.Fprintln(w, "\n--- All numbers ---")
	for i, e := range rep.Counts {
		fmt.Fprintf(w, "%2d: %3d", e.Number, e.Count)
		if (i+1)%10 == 0 || i == len(rep.Counts)-1 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, "  ")
		}
	}
}

func renderSyncReport(w io.Writer, r *lottosync.Report) {
	if r.UpToDate() {
		fmt.Fprintf(w, "Already up to date: %d rounds stored, latest round %d\n", r.Total, r.Latest)
		return
	}

	fmt.Fprintf(w, "Latest round: %d\n", r.Latest)
	fmt.Fprintf(w, "Stored before sync: %d\n", r.Saved)
	fmt.Fprintf(w, "Fetched: %d round(s)", len(r.Fetched))
	if len(r.Fetched) > 0 {
		fmt.Fprintf(w, " %s", joinInts(r.Fetched))
	}
	fmt.Fprintln(w)
	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped: %d round(s) %s\n", len(r.Skipped), joinInts(r.Skipped))
	}
	fmt.Fprintf(w, "Total stored: %d\n", r.Total)
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
