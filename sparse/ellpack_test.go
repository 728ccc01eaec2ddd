package sparse_test

import (
	"testing"

	"github.com/katalvlaran/gridsparse/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEllpackEncode(t *testing.T) {
	l, s := scannerFor(t, [][]float64{
		{1, 2, 0},
		{0, 0, 0},
		{0, 0, 3},
	}, 1, 1)
	enc, err := sparse.NewEllpackEncoder(s, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, enc.Width())

	rec, err := enc.Encode(cell(t, l, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 0, 0, 3, 0}, rec.Values)
	assert.Equal(t, []int{0, 1, -1, -1, 2, -1}, rec.Index)
}

func TestEllpackOverflow(t *testing.T) {
	l, s := scannerFor(t, [][]float64{{1, 2, 3}}, 1, 1)
	enc, err := sparse.NewEllpackEncoder(s, 2)
	require.NoError(t, err)
	_, err = enc.Encode(cell(t, l, 0, 0))
	require.ErrorIs(t, err, sparse.ErrRowOverflow)

	_, err = sparse.NewEllpackEncoder(s, -1)
	require.ErrorIs(t, err, sparse.ErrRowOverflow)
	_, err = sparse.NewEllpackEncoder(nil, 1)
	require.ErrorIs(t, err, sparse.ErrNilScanner)
}

// TestEllpackEmptyCell: a cell without rows emits nothing, a cell with only
// zero rows emits padding.
func TestEllpackEmptyCell(t *testing.T) {
	l, s := scannerFor(t, zeros44, 1, 3) // cell heights 2, 2, 0
	enc, err := sparse.NewEllpackEncoder(s, 1)
	require.NoError(t, err)

	rec, err := enc.Encode(cell(t, l, 2, 0))
	require.NoError(t, err)
	assert.Empty(t, rec.Values)

	rec, err = enc.Encode(cell(t, l, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, rec.Values)
	assert.Equal(t, []int{-1, -1}, rec.Index)
}
