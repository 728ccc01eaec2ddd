// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape and density checks shared by the
//     constructors, the CSV reader and the random generator.
//   - Return plain sentinel errors so call sites can wrap uniformly.

package matrix

import "fmt"

// Density domain in percent, matching the command-line contract (0..100).
const (
	densityMin = 0.0
	densityMax = 100.0
)

// ValidateShape ensures rows > 0 and cols > 0.
// Returns ErrInvalidDimensions otherwise.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// ValidateDensity ensures density lies in the closed interval [0, 100].
// Returns a wrapped ErrInvalidDensity otherwise.
// Complexity: O(1).
func ValidateDensity(density float64) error {
	if !(density >= densityMin && density <= densityMax) { // also rejects NaN
		return fmt.Errorf("density=%.3f not in [%.0f,%.0f]: %w", density, densityMin, densityMax, ErrInvalidDensity)
	}

	return nil
}
