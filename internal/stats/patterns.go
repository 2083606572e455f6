// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package stats

import (
	"sort"

	"github.com/tomtom215/lottopick/internal/models"
)

// SectionCount is the number of bands Section maps onto.
const SectionCount = 5

// Section maps a number onto its band: 1-10 -> 1, 11-20 -> 2, 21-30 -> 3,
// 31-40 -> 4 and 41 and above -> 5.
func Section(n int) int {
	switch {
	case n <= 10:
		return 1
	case n <= 20:
		return 2
	case n <= 30:
		return 3
	case n <= 40:
		return 4
	default:
		return 5
	}
}

// Sections returns the distinct bands touched by numbers, ascending.
func Sections(numbers []int) []int {
	var seen [SectionCount + 1]bool
	out := make([]int, 0, SectionCount)
	for _, n := range numbers {
		s := Section(n)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Ints(out)
	return out
}

// ConsecutiveRunLength returns the length of the longest run of consecutive
// integers in numbers, or 0 when no two numbers are adjacent.
//
// It counts adjacent pairs in the longest run and adds one only when at least
// one pair was found, so {1,2,3} reports 3 and {1,3,5} reports 0.
func ConsecutiveRunLength(numbers []int) int {
	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)

	run, longest := 0, 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1]+1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	if longest == 0 {
		return 0
	}
	return longest + 1
}

// Analysis is the per-recommendation breakdown shown next to each combination.
type Analysis struct {
	Numbers        []int `json:"numbers"`
	Frequencies    []int `json:"frequencies"`
	Sum            int   `json:"sum"`
	Hot            int   `json:"hot"`
	Cold           int   `json:"cold"`
	Odd            int   `json:"odd"`
	Even           int   `json:"even"`
	Sections       []int `json:"sections"`
	ConsecutiveRun int   `json:"consecutive_run"`
}

// Describe derives the reporting statistics of c against table.
// Hot and cold membership use the hotColdSize most and least frequent numbers.
func Describe(c models.Combination, table *FrequencyTable, hotColdSize int) Analysis {
	hot := make(map[int]struct{}, hotColdSize)
	for _, e := range table.Hot(hotColdSize) {
		hot[e.Number] = struct{}{}
	}
	cold := make(map[int]struct{}, hotColdSize)
	for _, e := range table.Cold(hotColdSize) {
		cold[e.Number] = struct{}{}
	}

	numbers := c.Numbers()
	a := Analysis{
		Numbers:        numbers,
		Frequencies:    make([]int, len(numbers)),
		Sum:            c.Sum(),
		Odd:            c.OddCount(),
		Sections:       Sections(numbers),
		ConsecutiveRun: ConsecutiveRunLength(numbers),
	}
	a.Even = len(numbers) - a.Odd

	for i, n := range numbers {
		a.Frequencies[i] = table.Count(n)
		if _, ok := hot[n]; ok {
			a.Hot++
		}
		if _, ok := cold[n]; ok {
			a.Cold++
		}
	}

	return a
}
