package sparse

import (
	"fmt"

	"github.com/katalvlaran/gridsparse/grid"
)

// Counts holds the buffer lengths one cell needs in a format.
// Fields a format does not use stay zero; NNZ is always filled.
type Counts struct {
	Values int // value array length (CSC, CSR, COO)
	Index  int // row/column index array length (CSC, CSR)
	Ptr    int // pointer array length (CSC, CSR)
	RowLen int // longest local row (ELLPACK)
	NNZ    int // nonzeros in the cell
}

// Sizer measures cells of one scanner in one format.
type Sizer struct {
	format  Format
	scanner *grid.Scanner
}

// NewSizer binds a format to a scanner.
// Errors: ErrUnsupportedFormat, ErrNilScanner.
func NewSizer(f Format, s *grid.Scanner) (*Sizer, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("NewSizer(%d): %w", int(f), ErrUnsupportedFormat)
	}
	if s == nil {
		return nil, fmt.Errorf("NewSizer: %w", ErrNilScanner)
	}

	return &Sizer{format: f, scanner: s}, nil
}

// Format returns the format being measured.
func (z *Sizer) Format() Format { return z.format }

// Measure computes the counts of cell v:
//
//	CSC      Values = Index = nnz, Ptr = in-bounds columns + 1
//	CSR      Values = Index = nnz, Ptr = in-bounds rows + 1
//	COO      Values = nnz
//	ELLPACK  RowLen = max over local rows of the row's nnz
//
// Complexity: O(cell area).
func (z *Sizer) Measure(v grid.View) Counts {
	if z.format == ELLPACK {
		var c Counts
		for _, n := range z.scanner.RowCounts(v) {
			c.NNZ += n
			c.RowLen = max(c.RowLen, n)
		}

		return c
	}

	var nnz int
	for range z.scanner.Entries(v, z.format.Order()) {
		nnz++
	}
	c := Counts{Values: nnz, NNZ: nnz}
	switch z.format {
	case CSC:
		c.Index, c.Ptr = nnz, v.Width()+1
	case CSR:
		c.Index, c.Ptr = nnz, v.Height()+1
	}

	return c
}

// Stats is the grid-wide worst case of Counts. It is a plain value: Fold and
// Merge return a new Stats and never modify the receiver.
type Stats struct {
	Format      Format
	MaxValues   int
	MaxIndex    int
	MaxPtr      int
	MaxRowLen   int
	Cells       int // cells folded in
	TotalValues int // sum of nnz over folded cells
}

// NewStats returns the identity element for Fold and Merge.
func NewStats(f Format) Stats { return Stats{Format: f} }

// Fold accounts for one more cell. Maxima never sum.
func (s Stats) Fold(c Counts) Stats {
	s.MaxValues = max(s.MaxValues, c.Values)
	s.MaxIndex = max(s.MaxIndex, c.Index)
	s.MaxPtr = max(s.MaxPtr, c.Ptr)
	s.MaxRowLen = max(s.MaxRowLen, c.RowLen)
	s.Cells++
	s.TotalValues += c.NNZ

	return s
}

// Merge combines two partial sweeps of disjoint cell sets over the same
// format. It is commutative and associative.
func (s Stats) Merge(o Stats) Stats {
	s.MaxValues = max(s.MaxValues, o.MaxValues)
	s.MaxIndex = max(s.MaxIndex, o.MaxIndex)
	s.MaxPtr = max(s.MaxPtr, o.MaxPtr)
	s.MaxRowLen = max(s.MaxRowLen, o.MaxRowLen)
	s.Cells += o.Cells
	s.TotalValues += o.TotalValues

	return s
}

// Result lists the maxima in output order:
//
//	CSC      maxValues, maxRowIndex, maxColPtr
//	CSR      maxValues, maxColIndex, maxRowPtr
//	COO      maxValues
//	ELLPACK  maxRowLen
func (s Stats) Result() []int {
	switch s.Format {
	case CSC, CSR:
		return []int{s.MaxValues, s.MaxIndex, s.MaxPtr}
	case COO:
		return []int{s.MaxValues}
	case ELLPACK:
		return []int{s.MaxRowLen}
	default:
		return nil
	}
}
