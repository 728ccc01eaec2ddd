package sparse_test

import (
	"testing"

	"github.com/katalvlaran/gridsparse/grid"
	"github.com/katalvlaran/gridsparse/matrix"
	"github.com/katalvlaran/gridsparse/sparse"
	"github.com/stretchr/testify/require"
)

// scannerFor builds a layout and scanner over a literal matrix.
func scannerFor(t *testing.T, rows [][]float64, px, py int) (*grid.Layout, *grid.Scanner) {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	l, err := grid.NewLayout(m.Rows(), m.Cols(), px, py)
	require.NoError(t, err)
	s, err := grid.NewScanner(l, m)
	require.NoError(t, err)

	return l, s
}

func cell(t *testing.T, l *grid.Layout, i, j int) grid.View {
	t.Helper()
	v, err := l.Cell(i, j)
	require.NoError(t, err)

	return v
}

// sweep folds every cell of l into Stats.
func sweep(t *testing.T, f sparse.Format, l *grid.Layout, s *grid.Scanner) sparse.Stats {
	t.Helper()
	z, err := sparse.NewSizer(f, s)
	require.NoError(t, err)
	st := sparse.NewStats(f)
	for v := range l.Cells() {
		st = st.Fold(z.Measure(v))
	}

	return st
}

var (
	diag3 = [][]float64{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	}
	// 1 0 2 0
	// 0 3 0 4
	// 5 0 0 6
	fixture34 = [][]float64{
		{1, 0, 2, 0},
		{0, 3, 0, 4},
		{5, 0, 0, 6},
	}
	zeros44 = [][]float64{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
)
