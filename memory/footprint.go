package memory

import (
	"fmt"

	"github.com/katalvlaran/gridsparse/grid"
	"github.com/katalvlaran/gridsparse/sparse"
)

const (
	// WordSize is the byte size of one stored value, index or pointer.
	WordSize = 4
	// Alignment is the byte alignment of the rows of B and C.
	Alignment = 16
	// DefaultMemory is the memory of one processing element in bytes.
	DefaultMemory = 48 * 1024
	// DefaultReserved is held back for code and communication buffers.
	DefaultReserved = 6 * 1024
)

// PaddedWidth returns the stored row length of an M-wide dense operand: M+1
// rounded up to the alignment, in words.
func PaddedWidth(m int) int {
	const perAlign = Alignment / WordSize

	return ceilDiv(m+1, perAlign) * perAlign
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// Tile is the work of one processing element: an Nt×Kt block of A
// multiplied with a Kt×M block of B into an Nt×M block of C.
type Tile struct {
	Nt, Kt, M int
}

// TileOf returns the tile of a layout's largest cell for a dense width m.
func TileOf(l *grid.Layout, m int) Tile {
	return Tile{Nt: l.CellHeight(), Kt: l.CellWidth(), M: m}
}

// operandWords is the size of B and C in words.
func (t Tile) operandWords() int {
	p := PaddedWidth(t.M)

	return t.Kt*p + t.Nt*p
}

// Bytes returns the footprint of t when A is stored in format f with the
// buffer sizes of st:
//
//	CSC      B + C + values + row index + column pointer
//	CSR      B + C + values + column index + row pointer
//	COO      B + C + 3 × values
//	ELLPACK  B + C + 2 × Nt × max row length
func Bytes(f sparse.Format, t Tile, st sparse.Stats) (int, error) {
	words := t.operandWords()
	switch f {
	case sparse.CSC, sparse.CSR:
		words += st.MaxValues + st.MaxIndex + st.MaxPtr
	case sparse.COO:
		words += 3 * st.MaxValues
	case sparse.ELLPACK:
		words += 2 * t.Nt * st.MaxRowLen
	default:
		return 0, fmt.Errorf("Bytes(%d): %w", int(f), sparse.ErrUnsupportedFormat)
	}

	return WordSize * words, nil
}

// DenseBytes returns the footprint of t when A is stored dense (GEMM).
func DenseBytes(t Tile) int {
	return WordSize * (t.operandWords() + t.Nt*t.Kt)
}

// BoundStats fills Stats for f from an upper bound on the nonzeros of one
// tile. For ELLPACK the bound also serves as the row width.
func BoundStats(f sparse.Format, t Tile, nnz int) sparse.Stats {
	st := sparse.NewStats(f)
	switch f {
	case sparse.CSC:
		st.MaxValues, st.MaxIndex, st.MaxPtr = nnz, nnz, t.Kt+1
	case sparse.CSR:
		st.MaxValues, st.MaxIndex, st.MaxPtr = nnz, nnz, t.Nt+1
	case sparse.COO:
		st.MaxValues = nnz
	case sparse.ELLPACK:
		st.MaxRowLen = nnz
	}

	return st
}

// Budget is the memory of one processing element.
type Budget struct {
	Memory   int // total bytes
	Reserved int // bytes not available to buffers
}

// DefaultBudget returns a 48 KiB element with 6 KiB reserved.
func DefaultBudget() Budget {
	return Budget{Memory: DefaultMemory, Reserved: DefaultReserved}
}

// Available is the number of bytes left for buffers.
func (b Budget) Available() int { return b.Memory - b.Reserved }

// Fits reports whether a footprint stays strictly below Available.
func (b Budget) Fits(bytes int) bool { return bytes < b.Available() }
