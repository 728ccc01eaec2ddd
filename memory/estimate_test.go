package memory_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridsparse/memory"
	"github.com/katalvlaran/gridsparse/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateNNZ(t *testing.T) {
	// 48×128 tile, 20%, 96 elements: mean 1228.8, sd ≈ 31.35, z ≈ 3.71.
	k, err := memory.EstimateNNZ(48, 128, 20, 96, memory.DefaultGuarantee)
	require.NoError(t, err)
	mean, sd := 1228.8, math.Sqrt(6144*0.2*0.8)
	assert.Greater(t, float64(k), mean+3*sd)
	assert.Less(t, float64(k), mean+4.5*sd)

	more, err := memory.EstimateNNZ(48, 128, 20, 960, memory.DefaultGuarantee)
	require.NoError(t, err)
	assert.Greater(t, more, k)

	looser, err := memory.EstimateNNZ(48, 128, 20, 96, 0.5)
	require.NoError(t, err)
	assert.Less(t, looser, k)
}

func TestEstimateNNZClamped(t *testing.T) {
	k, err := memory.EstimateNNZ(10, 10, 0, 4, 0.99)
	require.NoError(t, err)
	assert.Equal(t, 0, k)

	k, err = memory.EstimateNNZ(10, 10, 100, 4, 0.99)
	require.NoError(t, err)
	assert.Equal(t, 100, k)

	k, err = memory.EstimateNNZ(2, 2, 90, 1000, 0.999)
	require.NoError(t, err)
	assert.Equal(t, 4, k)
}

func TestEstimateNNZErrors(t *testing.T) {
	for _, tc := range []struct {
		nt, kt, trials int
		density, g     float64
	}{
		{0, 4, 1, 10, 0.9},
		{4, 4, 0, 10, 0.9},
		{4, 4, 1, 10, 1},
		{4, 4, 1, 10, 0},
		{4, 4, 1, 101, 0.9},
		{4, 4, 1, math.NaN(), 0.9},
	} {
		_, err := memory.EstimateNNZ(tc.nt, tc.kt, tc.density, tc.trials, tc.g)
		require.ErrorIs(t, err, memory.ErrInvalidInput, "%+v", tc)
	}
}

func TestSearch(t *testing.T) {
	q := memory.Query{N: 768, K: 768, M: 32, Density: 5, Format: sparse.CSR, MaxPx: 64, MaxPy: 64}
	b := memory.DefaultBudget()
	cfgs, err := memory.Search(q, b)
	require.NoError(t, err)
	require.NotEmpty(t, cfgs)

	prev := math.MaxInt
	for _, c := range cfgs {
		assert.Zero(t, 768%c.Px)
		assert.Zero(t, 768%c.Py)
		assert.True(t, b.Fits(c.Bytes))
		area := c.Tile.Nt * c.Tile.Kt
		assert.LessOrEqual(t, area, prev)
		prev = area
	}

	_, err = memory.Search(memory.Query{N: 8, K: 8, Format: sparse.CSC, MaxPx: 8, MaxPy: 8}, memory.Budget{Memory: 10})
	require.ErrorIs(t, err, memory.ErrNoFit)

	_, err = memory.Search(memory.Query{N: 8, K: 8, Format: sparse.Format(9), MaxPx: 1, MaxPy: 1}, b)
	require.ErrorIs(t, err, sparse.ErrUnsupportedFormat)
	_, err = memory.Search(memory.Query{N: 8, Format: sparse.CSC, MaxPx: 1, MaxPy: 1}, b)
	require.ErrorIs(t, err, memory.ErrInvalidInput)
}
