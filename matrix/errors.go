// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels, wrapped with method
// context via %w; callers branch with errors.Is. Nothing panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDataLength indicates that a backing slice or row set does not hold rows*cols values.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrNilMatrix indicates that a nil source matrix was passed to an adapter.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDensity indicates a density percentage outside [0, 100].
	ErrInvalidDensity = errors.New("matrix: density out of range")

	// ErrZeroValue indicates that a custom value generator kept producing zeros.
	ErrZeroValue = errors.New("matrix: value generator returned zero")

	// ErrMalformedCSV indicates that CSV input could not be decoded into the requested shape.
	ErrMalformedCSV = errors.New("matrix: malformed csv")
)
