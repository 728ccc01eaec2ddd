// SPDX-License-Identifier: MIT
// Package: matrix
//
// impl_random.go - Random(rows, cols, density) dense generator.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrInvalidDimensions).
//   - 0 ≤ density ≤ 100 percent (else ErrInvalidDensity).
//   - Exactly k = floor(density*rows*cols/100) slots become nonzero.
//   - Slots are addressed row-major, offset = i*cols + j, for every shape.
//
// Slot selection is a partial Fisher–Yates shuffle over all rows*cols offsets:
// each draw picks among the slots still free, so the loop runs exactly k times
// even at density 100.
//
// Determinism:
//   - Fixed draw order; the same seed and arguments give the same matrix.

package matrix

import (
	"fmt"
	"math"
)

const (
	methodRandom  = "Random"
	maxValueDraws = 64 // redraw budget for a custom value generator returning 0
)

// Random returns a rows×cols matrix with floor(density% * rows*cols) nonzero
// entries placed uniformly at random. Values come from the configured value
// generator, (0, 1] by default.
// Complexity: O(rows*cols) time and memory.
func Random(rows, cols int, density float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}
	if err = ValidateDensity(density); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}
	cfg := newGenConfig(opts...)

	total := rows * cols
	k := int(density * float64(total) / densityMax)
	if k > total {
		k = total
	}

	// slots[0:i] holds the offsets already chosen; slots[i:] the free ones.
	slots := make([]int, total)
	for off := range slots {
		slots[off] = off
	}
	var i, j int
	var v float64
	for i = 0; i < k; i++ {
		j = i + cfg.rng.Intn(total-i)
		slots[i], slots[j] = slots[j], slots[i]

		if v, err = drawValue(cfg); err != nil {
			return nil, fmt.Errorf("%s: slot %d: %w", methodRandom, slots[i], err)
		}
		m.data[slots[i]] = v
	}

	return m, nil
}

// drawValue asks the value generator for a finite nonzero value.
func drawValue(cfg genConfig) (float64, error) {
	var v float64
	for n := 0; n < maxValueDraws; n++ {
		v = cfg.valueFn(cfg.rng)
		if v != 0 {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, ErrNaNInf
			}
			return v, nil
		}
	}

	return 0, ErrZeroValue
}
