package grid

import (
	"fmt"
	"iter"
)

// Layout is the partition of a rows×cols matrix into Py grid rows and Px grid
// columns of submatrices. It is immutable once built.
//
// Cell dimensions are CellHeight = ceil(rows/Py) and CellWidth = ceil(cols/Px),
// so CellHeight*Py >= rows and CellWidth*Px >= cols: every matrix element
// (r, c) belongs to exactly one cell (r/CellHeight, c/CellWidth).
type Layout struct {
	rows, cols int // matrix shape
	px, py     int // grid columns, grid rows
	cellH      int // ceil(rows/py)
	cellW      int // ceil(cols/px)
}

// NewLayout validates the grid and matrix shapes and derives the cell size.
// Returns ErrBadGrid if px <= 0 or py <= 0, ErrBadShape if rows <= 0 or cols <= 0.
// Complexity: O(1).
func NewLayout(rows, cols, px, py int) (*Layout, error) {
	if px <= 0 || py <= 0 {
		return nil, fmt.Errorf("NewLayout(px=%d, py=%d): %w", px, py, ErrBadGrid)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewLayout(rows=%d, cols=%d): %w", rows, cols, ErrBadShape)
	}

	return &Layout{
		rows:  rows,
		cols:  cols,
		px:    px,
		py:    py,
		cellH: ceilDiv(rows, py),
		cellW: ceilDiv(cols, px),
	}, nil
}

// ceilDiv returns ceil(a/b) for a >= 0, b > 0.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Shape returns the matrix dimensions the layout was built for.
func (l *Layout) Shape() (rows, cols int) { return l.rows, l.cols }

// Grid returns the grid dimensions (Px columns, Py rows).
func (l *Layout) Grid() (px, py int) { return l.px, l.py }

// CellHeight is ceil(rows/Py), the nominal number of rows per cell.
func (l *Layout) CellHeight() int { return l.cellH }

// CellWidth is ceil(cols/Px), the nominal number of columns per cell.
func (l *Layout) CellWidth() int { return l.cellW }

// NumCells is Px*Py.
func (l *Layout) NumCells() int { return l.px * l.py }

// InBounds reports whether (i, j) names a grid cell.
func (l *Layout) InBounds(i, j int) bool {
	return i >= 0 && i < l.py && j >= 0 && j < l.px
}

// Cell returns the view of grid cell (i, j), clipped to the matrix.
// Returns ErrOutOfRange if (i, j) is outside [0,Py)×[0,Px).
// Complexity: O(1).
func (l *Layout) Cell(i, j int) (View, error) {
	if !l.InBounds(i, j) {
		return View{}, fmt.Errorf("Cell(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return l.cell(i, j), nil
}

// cell builds the clipped view; (i, j) must be in bounds.
func (l *Layout) cell(i, j int) View {
	return View{
		I:    i,
		J:    j,
		Row0: min(l.rows, i*l.cellH),
		Row1: min(l.rows, (i+1)*l.cellH),
		Col0: min(l.cols, j*l.cellW),
		Col1: min(l.cols, (j+1)*l.cellW),
		px:   l.px,
	}
}

// Cells yields every cell view in row-major grid order: grid rows outer,
// grid columns inner, so the n-th view has Index() == n.
func (l *Layout) Cells() iter.Seq[View] {
	return func(yield func(View) bool) {
		var i, j int
		for i = 0; i < l.py; i++ {
			for j = 0; j < l.px; j++ {
				if !yield(l.cell(i, j)) {
					return
				}
			}
		}
	}
}

// Locate maps a global matrix coordinate to its cell and local offset.
// Returns ErrOutOfRange if (r, c) lies outside the matrix.
// Complexity: O(1).
func (l *Layout) Locate(r, c int) (Position, error) {
	if r < 0 || r >= l.rows || c < 0 || c >= l.cols {
		return Position{}, fmt.Errorf("Locate(%d,%d): %w", r, c, ErrOutOfRange)
	}

	return Position{
		I:   r / l.cellH,
		J:   c / l.cellW,
		Row: r % l.cellH,
		Col: c % l.cellW,
	}, nil
}

// String implements fmt.Stringer.
func (l *Layout) String() string {
	return fmt.Sprintf("%dx%d matrix on %dx%d grid (cell %dx%d)", l.rows, l.cols, l.py, l.px, l.cellH, l.cellW)
}
