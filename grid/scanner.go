package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/gridsparse/matrix"
)

// Scanner enumerates the nonzeros of layout cells over one dense matrix.
// The matrix is read through its raw row-major buffer and never modified, so
// a Scanner may be shared freely while the matrix stays unchanged.
type Scanner struct {
	layout *Layout
	data   []float64 // row-major, len == rows*cols
	cols   int       // row stride
}

// NewScanner binds a layout to the matrix it partitions.
// Returns ErrShapeMismatch when the matrix shape differs from the layout.
func NewScanner(l *Layout, m *matrix.Dense) (*Scanner, error) {
	if l == nil || m == nil {
		return nil, fmt.Errorf("NewScanner: nil layout or matrix: %w", ErrShapeMismatch)
	}
	r, c := m.Shape()
	if r != l.rows || c != l.cols {
		return nil, fmt.Errorf("NewScanner: matrix %dx%d, layout %dx%d: %w", r, c, l.rows, l.cols, ErrShapeMismatch)
	}

	return &Scanner{layout: l, data: m.RawData(), cols: c}, nil
}

// Layout returns the layout the scanner walks.
func (s *Scanner) Layout() *Layout { return s.layout }

// Entries yields the nonzeros of v in local coordinates, in order o:
//
//   - ColumnMajor: local columns outer, local rows inner;
//   - RowMajor and RowMajorPerRow: local rows outer, local columns inner.
//
// Local indices past the matrix bound are never visited. The sequence is
// lazy, finite and can be ranged over any number of times.
func (s *Scanner) Entries(v View, o Order) iter.Seq[Entry] {
	if o == ColumnMajor {
		return s.columnMajor(v)
	}

	return s.rowMajor(v)
}

func (s *Scanner) columnMajor(v View) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		var r, c int
		var x float64
		for c = v.Col0; c < v.Col1; c++ {
			for r = v.Row0; r < v.Row1; r++ {
				x = s.data[r*s.cols+c]
				if x == 0 {
					continue
				}
				if !yield(Entry{Row: r - v.Row0, Col: c - v.Col0, Value: x}) {
					return
				}
			}
		}
	}
}

func (s *Scanner) rowMajor(v View) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		var r, c, base int
		var x float64
		for r = v.Row0; r < v.Row1; r++ {
			base = r * s.cols
			for c = v.Col0; c < v.Col1; c++ {
				x = s.data[base+c]
				if x == 0 {
					continue
				}
				if !yield(Entry{Row: r - v.Row0, Col: c - v.Col0, Value: x}) {
					return
				}
			}
		}
	}
}

// RowCounts yields (local row, nonzeros in that row) for every in-bounds row
// of v, top to bottom. Rows without nonzeros are reported with a zero count.
func (s *Scanner) RowCounts(v View) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		var r, c, base, n int
		for r = v.Row0; r < v.Row1; r++ {
			base = r * s.cols
			n = 0
			for c = v.Col0; c < v.Col1; c++ {
				if s.data[base+c] != 0 {
					n++
				}
			}
			if !yield(r-v.Row0, n) {
				return
			}
		}
	}
}
