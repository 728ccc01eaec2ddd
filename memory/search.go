package memory

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridsparse/sparse"
)

// Config is one candidate grid for an N×K matrix.
type Config struct {
	Px, Py int
	Tile   Tile
	NNZ    int // estimated nonzeros per tile
	Bytes  int // estimated footprint per element
}

// Query describes a Search.
type Query struct {
	N, K      int           // matrix rows and columns
	M         int           // dense operand width
	Density   float64       // percent
	Format    sparse.Format // storage of A
	MaxPx     int           // largest grid width tried
	MaxPy     int           // largest grid height tried
	Guarantee float64       // 0 selects DefaultGuarantee
}

// Search tries every Px dividing K and Py dividing N up to the limits and
// returns the configurations that fit b, largest tile first; ties put the
// larger footprint first. Returns ErrNoFit when nothing fits.
func Search(q Query, b Budget) ([]Config, error) {
	if q.N <= 0 || q.K <= 0 || q.M < 0 || q.MaxPx <= 0 || q.MaxPy <= 0 {
		return nil, fmt.Errorf("Search: %w", ErrInvalidInput)
	}
	if !q.Format.Valid() {
		return nil, fmt.Errorf("Search(%d): %w", int(q.Format), sparse.ErrUnsupportedFormat)
	}
	if q.Guarantee == 0 {
		q.Guarantee = DefaultGuarantee
	}

	var out []Config
	for py := 1; py <= min(q.MaxPy, q.N); py++ {
		if q.N%py != 0 {
			continue
		}
		for px := 1; px <= min(q.MaxPx, q.K); px++ {
			if q.K%px != 0 {
				continue
			}
			t := Tile{Nt: q.N / py, Kt: q.K / px, M: q.M}
			nnz, err := EstimateNNZ(t.Nt, t.Kt, q.Density, px*py, q.Guarantee)
			if err != nil {
				return nil, fmt.Errorf("Search: %w", err)
			}
			bytes, err := Bytes(q.Format, t, BoundStats(q.Format, t, nnz))
			if err != nil {
				return nil, fmt.Errorf("Search: %w", err)
			}
			if b.Fits(bytes) {
				out = append(out, Config{Px: px, Py: py, Tile: t, NNZ: nnz, Bytes: bytes})
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("Search(%dx%d, %s): %w", q.N, q.K, q.Format, ErrNoFit)
	}
	slices.SortStableFunc(out, func(a, b Config) int {
		if c := cmp.Compare(b.Tile.Nt*b.Tile.Kt, a.Tile.Nt*a.Tile.Kt); c != 0 {
			return c
		}

		return cmp.Compare(b.Bytes, a.Bytes)
	})

	return out, nil
}
