// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package stats

// FrequencyReport is the statistics summary shown by the stats command and API.
type FrequencyReport struct {
	Draws int `json:"draws"`
	Total int `json:"total"`

	// Top lists the k most frequent numbers, most frequent first.
	Top []NumberCount `json:"top"`

	// Bottom lists the k least frequent numbers, least frequent last.
	Bottom []NumberCount `json:"bottom"`

	// Counts covers every number in the domain, ascending.
	Counts []NumberCount `json:"counts"`
}

// NewFrequencyReport summarises table with k entries in the top and bottom lists.
func NewFrequencyReport(table *FrequencyTable, k int) FrequencyReport {
	return FrequencyReport{
		Draws:  table.Draws(),
		Total:  table.Total(),
		Top:    table.Hot(k),
		Bottom: table.Cold(k),
		Counts: table.Counts(),
	}
}
