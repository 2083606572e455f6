// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package models

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/lottopick/internal/validation"
)

const (
	// MinNumber is the smallest number that can be drawn.
	MinNumber = 1

	// MaxNumber is the largest number that can be drawn.
	MaxNumber = 45

	// DrawSize is the count of winning numbers per draw (bonus excluded).
	DrawSize = 6

	// BallCount is the count of balls on a results page, bonus included.
	BallCount = 7
)

// ErrInvalidDraw is returned when a Draw does not hold six distinct numbers in range.
var ErrInvalidDraw = errors.New("invalid draw")

// Draw holds one drawing's winning numbers in the order they were recorded.
// Order is positional only; analysis treats a Draw as a set.
type Draw [DrawSize]int

// NewDraw builds a Draw from the first DrawSize values and validates it.
func NewDraw(numbers []int) (Draw, error) {
	var d Draw
	if len(numbers) < DrawSize {
		return d, fmt.Errorf("%w: need %d numbers, got %d", ErrInvalidDraw, DrawSize, len(numbers))
	}
	copy(d[:], numbers[:DrawSize])
	if err := d.Validate(); err != nil {
		return Draw{}, err
	}
	return d, nil
}

// Validate checks that the Draw holds six distinct numbers in [MinNumber, MaxNumber].
func (d Draw) Validate() error {
	if verr := validation.ValidateNumbers(d[:], DrawSize, MinNumber, MaxNumber); verr != nil {
		return fmt.Errorf("%w %v: %s", ErrInvalidDraw, d[:], verr.Error())
	}
	return nil
}

// Numbers returns a copy of the Draw as a slice.
func (d Draw) Numbers() []int {
	out := make([]int, DrawSize)
	copy(out, d[:])
	return out
}

// String renders the Draw as comma-separated numbers.
func (d Draw) String() string {
	parts := make([]string, DrawSize)
	for i, n := range d {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// History is the ordered list of recorded Draws, most recent first.
// Round numbers are not stored; position is the only ordering signal.
type History []Draw

// Len returns the number of recorded rounds.
func (h History) Len() int {
	return len(h)
}

// Clone returns an independent copy so callers never alias each other's history.
func (h History) Clone() History {
	if h == nil {
		return History{}
	}
	out := make(History, len(h))
	copy(out, h)
	return out
}

// Prepend returns a new History with newer draws (already newest-first) ahead of h.
// Neither input is modified.
func (h History) Prepend(newer []Draw) History {
	out := make(History, 0, len(newer)+len(h))
	out = append(out, newer...)
	out = append(out, h...)
	return out
}

// Combination is an ascending set of DrawSize distinct numbers.
// It is comparable, so it can key a map for duplicate detection.
type Combination [DrawSize]int

// NewCombination sorts numbers ascending into a Combination.
// The caller supplies exactly DrawSize numbers.
func NewCombination(numbers []int) Combination {
	var c Combination
	copy(c[:], numbers)
	sort.Ints(c[:])
	return c
}

// Numbers returns a copy of the Combination as a slice.
func (c Combination) Numbers() []int {
	out := make([]int, DrawSize)
	copy(out, c[:])
	return out
}

// Sum returns the total of all numbers.
func (c Combination) Sum() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// OddCount returns how many numbers are odd.
func (c Combination) OddCount() int {
	odd := 0
	for _, n := range c {
		if n%2 == 1 {
			odd++
		}
	}
	return odd
}

// Validate checks that c is ascending with distinct numbers in range.
func (c Combination) Validate() error {
	for i := 1; i < DrawSize; i++ {
		if c[i] <= c[i-1] {
			return fmt.Errorf("%w: combination %v is not strictly ascending", ErrInvalidDraw, c[:])
		}
	}
	return Draw(c).Validate()
}
