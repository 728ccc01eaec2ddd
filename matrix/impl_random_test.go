package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridsparse/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomExactCount checks that the nonzero count is floor(density% * r*c)
// for square and non-square shapes.
func TestRandomExactCount(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		density    float64
		want       int
	}{
		{"square 20%", 10, 10, 20, 20},
		{"wide 5%", 4, 50, 5, 10},
		{"tall 33%", 9, 3, 33, 8},
		{"empty", 6, 7, 0, 0},
		{"full", 5, 3, 100, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.Random(tc.rows, tc.cols, tc.density, matrix.WithSeed(7))
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			assert.Equal(t, tc.want, m.NNZ())
		})
	}
}

// TestRandomValuesInUnitInterval checks the default value range (0, 1].
func TestRandomValuesInUnitInterval(t *testing.T) {
	m, err := matrix.Random(20, 30, 50)
	require.NoError(t, err)
	for _, v := range m.RawData() {
		if v == 0 {
			continue
		}
		require.Greater(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

// TestRandomDeterministic locks reproducibility for a fixed seed and the
// default seed.
func TestRandomDeterministic(t *testing.T) {
	a, err := matrix.Random(8, 12, 25, matrix.WithSeed(99))
	require.NoError(t, err)
	b, err := matrix.Random(8, 12, 25, matrix.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	require.Equal(t, a.RawData(), b.RawData())

	c, err := matrix.Random(8, 12, 25)
	require.NoError(t, err)
	d, err := matrix.Random(8, 12, 25, matrix.WithSeed(matrix.DefaultSeed))
	require.NoError(t, err)
	require.Equal(t, c.RawData(), d.RawData())
}

// TestRandomValidation covers the sentinel errors.
func TestRandomValidation(t *testing.T) {
	_, err := matrix.Random(0, 3, 10)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Random(3, 3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDensity)

	_, err = matrix.Random(3, 3, 100.5)
	require.ErrorIs(t, err, matrix.ErrInvalidDensity)

	zero := matrix.WithValueFn(func(*rand.Rand) float64 { return 0 })
	_, err = matrix.Random(3, 3, 50, zero)
	require.ErrorIs(t, err, matrix.ErrZeroValue)
}

// TestRandomCustomValues uses a constant generator.
func TestRandomCustomValues(t *testing.T) {
	m, err := matrix.Random(4, 4, 50, matrix.WithValueFn(func(*rand.Rand) float64 { return -2 }))
	require.NoError(t, err)

	var sum float64
	for _, v := range m.RawData() {
		sum += v
	}
	require.Equal(t, -16.0, sum)
}

// TestOptionPanics ensures option constructors reject nil.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithRand(nil) })
	require.Panics(t, func() { matrix.WithValueFn(nil) })
}
