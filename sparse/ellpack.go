package sparse

import (
	"fmt"

	"github.com/katalvlaran/gridsparse/grid"
)

// ELLPACK padding written after the real entries of a short row.
const (
	EllpackPadValue = 0.0
	EllpackPadIndex = -1
)

// EllpackEncoder materializes cells in ELLPACK with a fixed row width.
// The width is grid-wide, normally Stats.MaxRowLen of a prior size query.
type EllpackEncoder struct {
	scanner *grid.Scanner
	width   int
}

// NewEllpackEncoder binds a scanner to a row width.
// Errors: ErrNilScanner; ErrRowOverflow for a negative width.
func NewEllpackEncoder(s *grid.Scanner, width int) (*EllpackEncoder, error) {
	if s == nil {
		return nil, fmt.Errorf("NewEllpackEncoder: %w", ErrNilScanner)
	}
	if width < 0 {
		return nil, fmt.Errorf("NewEllpackEncoder: width %d: %w", width, ErrRowOverflow)
	}

	return &EllpackEncoder{scanner: s, width: width}, nil
}

// Width returns the padded row width.
func (e *EllpackEncoder) Width() int { return e.width }

// Encode emits exactly Width slots for every in-bounds local row of v: the
// row's nonzeros in column order, then EllpackPadValue / EllpackPadIndex.
// Returns ErrRowOverflow when a row holds more than Width nonzeros.
// Complexity: O(cell area).
func (e *EllpackEncoder) Encode(v grid.View) (Record, error) {
	n := v.Height() * e.width
	rec := Record{
		Cell:   v.Index(),
		Values: make([]float64, n),
		Index:  make([]int, n),
	}
	for k := range rec.Index {
		rec.Index[k] = EllpackPadIndex
	}

	fill := make([]int, v.Height()) // slots used per local row
	for en := range e.scanner.Entries(v, grid.RowMajorPerRow) {
		if fill[en.Row] == e.width {
			return Record{}, fmt.Errorf("Encode(%s): local row %d: %w", v, en.Row, ErrRowOverflow)
		}
		k := en.Row*e.width + fill[en.Row]
		rec.Values[k] = en.Value
		rec.Index[k] = en.Col
		fill[en.Row]++
	}

	return rec, nil
}
