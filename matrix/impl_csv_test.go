package matrix_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gridsparse/matrix"
	"github.com/stretchr/testify/require"
)

// TestWriteCSVFormat pins the %f field format and line layout.
func TestWriteCSVFormat(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 0, 0.25}, {0, -2, 0}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrix.WriteCSV(&buf, m))
	want := "1.000000,0.000000,0.250000\n0.000000,-2.000000,0.000000\n"
	require.Equal(t, want, buf.String())
}

// TestReadCSV parses blanks and short-form numbers.
func TestReadCSV(t *testing.T) {
	in := "1, 0,0.5\n0,2 ,0\n"
	m, err := matrix.ReadCSV(strings.NewReader(in), 2, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0.5, 0, 2, 0}, m.RawData())
}

// TestReadCSVMalformed covers field count, row count and parse failures.
func TestReadCSVMalformed(t *testing.T) {
	cases := map[string]string{
		"short row":  "1,2\n3\n",
		"extra row":  "1,2\n3,4\n5,6\n",
		"few rows":   "1,2\n",
		"bad number": "1,x\n3,4\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.ReadCSV(strings.NewReader(in), 2, 2)
			require.ErrorIs(t, err, matrix.ErrMalformedCSV)
		})
	}
}

// TestSaveLoadCSV round-trips through a real file.
func TestSaveLoadCSV(t *testing.T) {
	m, err := matrix.Random(5, 7, 40, matrix.WithSeed(3))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mat_5_7_40.txt")
	require.NoError(t, matrix.SaveCSV(path, m))

	got, err := matrix.LoadCSV(path, 5, 7)
	require.NoError(t, err)
	require.Equal(t, m.NNZ(), got.NNZ())
	for i, v := range m.RawData() {
		require.InDelta(t, v, got.RawData()[i], 1e-6)
	}

	_, err = matrix.LoadCSV(filepath.Join(t.TempDir(), "missing.txt"), 5, 7)
	require.Error(t, err)
}
