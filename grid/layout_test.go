package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridsparse/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLayoutValidation checks the configuration errors.
func TestNewLayoutValidation(t *testing.T) {
	_, err := grid.NewLayout(4, 4, 0, 2)
	require.ErrorIs(t, err, grid.ErrBadGrid)
	_, err = grid.NewLayout(4, 4, 2, -1)
	require.ErrorIs(t, err, grid.ErrBadGrid)
	_, err = grid.NewLayout(0, 4, 2, 2)
	require.ErrorIs(t, err, grid.ErrBadShape)
}

// TestCellDimensions pins the ceiling division.
func TestCellDimensions(t *testing.T) {
	cases := []struct {
		rows, cols, px, py int
		wantH, wantW       int
	}{
		{4, 4, 2, 2, 2, 2},
		{5, 7, 2, 3, 2, 4},
		{3, 3, 1, 1, 3, 3},
		{4, 10, 3, 3, 2, 4},
		{2, 2, 5, 5, 1, 1},
	}
	for _, tc := range cases {
		l, err := grid.NewLayout(tc.rows, tc.cols, tc.px, tc.py)
		require.NoError(t, err)
		assert.Equal(t, tc.wantH, l.CellHeight(), "%v", l)
		assert.Equal(t, tc.wantW, l.CellWidth(), "%v", l)
		assert.GreaterOrEqual(t, l.CellHeight()*tc.py, tc.rows)
		assert.GreaterOrEqual(t, l.CellWidth()*tc.px, tc.cols)
	}
}

// TestPartitionCoversExactlyOnce walks many shapes and asserts that the cell
// views cover [0,n)×[0,m) with no overlap and no gap.
func TestPartitionCoversExactlyOnce(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for m := 1; m <= 9; m++ {
			for px := 1; px <= 5; px++ {
				for py := 1; py <= 5; py++ {
					l, err := grid.NewLayout(n, m, px, py)
					require.NoError(t, err)

					hits := make([]int, n*m)
					idx := 0
					for v := range l.Cells() {
						require.Equal(t, idx, v.Index())
						idx++
						require.LessOrEqual(t, v.Height(), l.CellHeight())
						require.LessOrEqual(t, v.Width(), l.CellWidth())
						for r := v.Row0; r < v.Row1; r++ {
							for c := v.Col0; c < v.Col1; c++ {
								hits[r*m+c]++
							}
						}
					}
					require.Equal(t, px*py, idx)
					for off, h := range hits {
						require.Equal(t, 1, h, "n=%d m=%d px=%d py=%d cell (%d,%d)", n, m, px, py, off/m, off%m)
					}
				}
			}
		}
	}
}

// TestEdgeCellsClipped checks the smaller and empty trailing cells.
func TestEdgeCellsClipped(t *testing.T) {
	// 4 rows on 3 grid rows: cellHeight 2 → rows [0,2) [2,4) [4,4).
	l, err := grid.NewLayout(4, 5, 2, 3)
	require.NoError(t, err)

	last, err := l.Cell(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, last.Height())
	assert.Equal(t, 2, last.Width()) // cols [3,5)
	assert.True(t, last.Empty())
	assert.Equal(t, 5, last.Index())

	mid, err := l.Cell(1, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.View{I: 1, J: 0, Row0: 2, Row1: 4, Col0: 0, Col1: 3}.String(), mid.String())
	assert.False(t, mid.Empty())

	_, err = l.Cell(3, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = l.Cell(0, -1)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestLocateAgreesWithCell maps every coordinate back into its view.
func TestLocateAgreesWithCell(t *testing.T) {
	l, err := grid.NewLayout(7, 5, 2, 3)
	require.NoError(t, err)

	for r := 0; r < 7; r++ {
		for c := 0; c < 5; c++ {
			p, err := l.Locate(r, c)
			require.NoError(t, err)
			v, err := l.Cell(p.I, p.J)
			require.NoError(t, err)
			require.Equal(t, r, v.Row0+p.Row)
			require.Equal(t, c, v.Col0+p.Col)
		}
	}
	_, err = l.Locate(7, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = l.Locate(0, -1)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestCellsEarlyStop ensures the iterator honours a break.
func TestCellsEarlyStop(t *testing.T) {
	l, err := grid.NewLayout(4, 4, 2, 2)
	require.NoError(t, err)

	var n int
	for range l.Cells() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
	require.Equal(t, 4, l.NumCells())
}
