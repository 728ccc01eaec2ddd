package grid

import "fmt"

// Order selects the visitation order of a cell's nonzeros.
type Order int

const (
	// ColumnMajor walks local columns outer, local rows inner (CSC).
	ColumnMajor Order = iota
	// RowMajor walks local rows outer, local columns inner (CSR, COO).
	RowMajor
	// RowMajorPerRow is row-major visitation consumed one row at a time (ELLPACK).
	RowMajorPerRow
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "column-major"
	case RowMajor:
		return "row-major"
	case RowMajorPerRow:
		return "row-major-per-row"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Entry is one nonzero of a cell, in local coordinates.
type Entry struct {
	Row, Col int
	Value    float64
}

// View is the window of grid cell (I, J): global rows [Row0, Row1) and global
// columns [Col0, Col1), already clipped to the matrix. I counts grid rows
// (0..Py-1), J grid columns (0..Px-1).
type View struct {
	I, J       int
	Row0, Row1 int
	Col0, Col1 int
	px         int
}

// Height is the number of in-bounds local rows.
func (v View) Height() int { return v.Row1 - v.Row0 }

// Width is the number of in-bounds local columns.
func (v View) Width() int { return v.Col1 - v.Col0 }

// Empty reports whether the view holds no matrix element at all.
func (v View) Empty() bool { return v.Height() == 0 || v.Width() == 0 }

// Index is the row-major grid position I*Px + J. Materialized streams use it
// as the line number of this cell.
func (v View) Index() int { return v.I*v.px + v.J }

// String implements fmt.Stringer.
func (v View) String() string {
	return fmt.Sprintf("cell(%d,%d) rows[%d,%d) cols[%d,%d)", v.I, v.J, v.Row0, v.Row1, v.Col0, v.Col1)
}

// Position locates a global matrix coordinate inside the grid.
type Position struct {
	I, J     int // grid cell
	Row, Col int // offset inside the cell
}
