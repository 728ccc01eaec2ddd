// SPDX-License-Identifier: MIT
// Package: matrix
//
// impl_gonum.go - adapters between Dense and gonum.org/v1/gonum/mat.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const methodFromGonum = "FromGonum"

// FromGonum copies any gonum matrix into a new Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty matrix), ErrNaNInf.
// Complexity: O(r*c).
func FromGonum(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", methodFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, a.At(i, j)); err != nil {
				return nil, fmt.Errorf("%s: %w", methodFromGonum, err)
			}
		}
	}

	return m, nil
}

// ToGonum returns an independent *mat.Dense with the same shape and values.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}
