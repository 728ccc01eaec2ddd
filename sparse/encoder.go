package sparse

import (
	"fmt"

	"github.com/katalvlaran/gridsparse/grid"
)

// Record is the sparse representation of one grid cell.
//
//	CSC      Values, Index = local rows,    Ptr = column pointer
//	CSR      Values, Index = local columns, Ptr = row pointer
//	COO      Values, Index = local columns, Rows = local rows
//	ELLPACK  Values, Index = local columns (padded)
type Record struct {
	Cell   int // grid.View.Index of the source cell
	Values []float64
	Index  []int
	Ptr    []int
	Rows   []int
}

// NNZ is the number of stored values.
func (r Record) NNZ() int { return len(r.Values) }

// Encoder materializes cells in CSC, CSR or COO.
type Encoder struct {
	format  Format
	scanner *grid.Scanner
}

// NewEncoder binds a format to a scanner.
// Errors: ErrUnsupportedFormat, ErrNotMaterializable (ELLPACK, see
// NewEllpackEncoder), ErrNilScanner.
func NewEncoder(f Format, s *grid.Scanner) (*Encoder, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("NewEncoder(%d): %w", int(f), ErrUnsupportedFormat)
	}
	if f == ELLPACK {
		return nil, fmt.Errorf("NewEncoder(%s): %w", f, ErrNotMaterializable)
	}
	if s == nil {
		return nil, fmt.Errorf("NewEncoder: %w", ErrNilScanner)
	}

	return &Encoder{format: f, scanner: s}, nil
}

// Format returns the encoded format.
func (e *Encoder) Format() Format { return e.format }

// Encode builds the record of cell v. Arrays follow the scan order of the
// format; the pointer holds the running count before each in-bounds local
// column (CSC) or row (CSR) followed by the total, so a cell with no
// in-bounds column or row yields [0].
// Complexity: O(cell area).
func (e *Encoder) Encode(v grid.View) Record {
	rec := Record{Cell: v.Index()}
	switch e.format {
	case CSC:
		rec.Ptr = make([]int, v.Width()+1)
		for en := range e.scanner.Entries(v, grid.ColumnMajor) {
			rec.Values = append(rec.Values, en.Value)
			rec.Index = append(rec.Index, en.Row)
			rec.Ptr[en.Col+1]++
		}
		prefixSum(rec.Ptr)
	case CSR:
		rec.Ptr = make([]int, v.Height()+1)
		for en := range e.scanner.Entries(v, grid.RowMajor) {
			rec.Values = append(rec.Values, en.Value)
			rec.Index = append(rec.Index, en.Col)
			rec.Ptr[en.Row+1]++
		}
		prefixSum(rec.Ptr)
	case COO:
		for en := range e.scanner.Entries(v, grid.RowMajor) {
			rec.Values = append(rec.Values, en.Value)
			rec.Index = append(rec.Index, en.Col)
			rec.Rows = append(rec.Rows, en.Row)
		}
	}

	return rec
}

// prefixSum turns per-slot counts (slot 0 unused) into running totals in place.
func prefixSum(p []int) {
	for i := 1; i < len(p); i++ {
		p[i] += p[i-1]
	}
}
