// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package stats

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tomtom215/lottopick/internal/models"
)

// ErrInvalidTierSize is returned when the requested tiers cannot fit the domain.
var ErrInvalidTierSize = errors.New("invalid tier size")

// Domain is the inclusive range of drawable numbers.
type Domain struct {
	Min int
	Max int
}

// DefaultDomain returns the 1..45 domain of the game.
func DefaultDomain() Domain {
	return Domain{Min: models.MinNumber, Max: models.MaxNumber}
}

// Size returns how many numbers the domain holds.
func (d Domain) Size() int {
	return d.Max - d.Min + 1
}

// Contains reports whether n is inside the domain.
func (d Domain) Contains(n int) bool {
	return n >= d.Min && n <= d.Max
}

// Analyzer builds FrequencyTables over a fixed Domain.
type Analyzer struct {
	domain Domain
}

// NewAnalyzer creates an Analyzer for the given domain.
func NewAnalyzer(domain Domain) *Analyzer {
	return &Analyzer{domain: domain}
}

// Analyze counts occurrences of every number across all Draws of history.
// Numbers outside the domain are ignored; stored draws are validated on load.
func (a *Analyzer) Analyze(history models.History) *FrequencyTable {
	size := a.domain.Size()
	t := &FrequencyTable{
		domain: a.domain,
		counts: make([]int, size),
		order:  make([]int, 0, size),
		draws:  len(history),
	}

	seen := make([]bool, size)
	for _, draw := range history {
		for _, n := range draw {
			if !a.domain.Contains(n) {
				continue
			}
			idx := n - a.domain.Min
			t.counts[idx]++
			if !seen[idx] {
				seen[idx] = true
				t.order = append(t.order, n)
			}
		}
	}

	for n := a.domain.Min; n <= a.domain.Max; n++ {
		if !seen[n-a.domain.Min] {
			t.order = append(t.order, n)
		}
	}

	return t
}

// Analyze is a convenience wrapper over the default domain.
func Analyze(history models.History) *FrequencyTable {
	return NewAnalyzer(DefaultDomain()).Analyze(history)
}

// NumberCount pairs a number with its occurrence count.
type NumberCount struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// FrequencyTable holds per-number occurrence counts over a History.
// It is immutable after Analyze returns.
type FrequencyTable struct {
	domain Domain
	counts []int
	// order lists numbers by first appearance, never-drawn numbers appended ascending.
	order []int
	draws int
}

// Domain returns the number domain the table covers.
func (t *FrequencyTable) Domain() Domain {
	return t.domain
}

// Count returns how often n was drawn; zero for numbers never drawn or out of domain.
func (t *FrequencyTable) Count(n int) int {
	if !t.domain.Contains(n) {
		return 0
	}
	return t.counts[n-t.domain.Min]
}

// Counts returns the count of every number in the domain, ascending by number.
func (t *FrequencyTable) Counts() []NumberCount {
	out := make([]NumberCount, 0, len(t.counts))
	for i, c := range t.counts {
		out = append(out, NumberCount{Number: t.domain.Min + i, Count: c})
	}
	return out
}

// Total returns the sum of all counts.
func (t *FrequencyTable) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Draws returns the number of Draws the table was built from.
func (t *FrequencyTable) Draws() int {
	return t.draws
}

// Ranking returns every number ordered by descending count.
// Ties keep first-appearance order, so the ranking is deterministic for a History.
func (t *FrequencyTable) Ranking() []NumberCount {
	ranked := make([]NumberCount, len(t.order))
	for i, n := range t.order {
		ranked[i] = NumberCount{Number: n, Count: t.Count(n)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// Tiers partitions the domain by frequency rank.
type Tiers struct {
	// Top holds the k most frequent numbers, most frequent first.
	Top []int `json:"top"`

	// Mid holds the remaining numbers in ascending order.
	Mid []int `json:"mid"`

	// Bottom holds the k least frequent numbers, least frequent last.
	Bottom []int `json:"bottom"`
}

// Tiers splits the ranking into Top-k, Bottom-k and the Mid remainder.
func (t *FrequencyTable) Tiers(k int) (Tiers, error) {
	size := t.domain.Size()
	if k < 1 || 2*k >= size {
		return Tiers{}, fmt.Errorf("%w: %d (domain of %d needs 1 <= k < %d)", ErrInvalidTierSize, k, size, (size+1)/2)
	}

	ranked := t.Ranking()
	tiers := Tiers{
		Top:    numbersOf(ranked[:k]),
		Bottom: numbersOf(ranked[size-k:]),
		Mid:    numbersOf(ranked[k : size-k]),
	}
	sort.Ints(tiers.Mid)
	return tiers, nil
}

// Hot returns the k most frequent entries.
func (t *FrequencyTable) Hot(k int) []NumberCount {
	ranked := t.Ranking()
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// Cold returns the k least frequent entries, least frequent last.
func (t *FrequencyTable) Cold(k int) []NumberCount {
	ranked := t.Ranking()
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[len(ranked)-k:]
}

func numbersOf(entries []NumberCount) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Number
	}
	return out
}
