package sparse_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/katalvlaran/gridsparse/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterCSC(t *testing.T) {
	var val, idx, ptr bytes.Buffer
	w, err := sparse.NewWriter(sparse.CSC, &val, &idx, &ptr)
	require.NoError(t, err)

	require.NoError(t, w.Write(sparse.Record{Values: []float64{1, 2.5, 3}, Index: []int{0, 1, 2}, Ptr: []int{0, 1, 2, 3}}))
	require.NoError(t, w.Write(sparse.Record{Ptr: []int{0, 0, 0}}))
	require.NoError(t, w.Write(sparse.Record{Ptr: []int{0}}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "1.000000,2.500000,3.000000,\n\n\n", val.String())
	assert.Equal(t, "0,1,2,\n\n\n", idx.String())
	assert.Equal(t, "0,1,2,3\n0,0,0\n0\n", ptr.String())
	assert.Equal(t, 3, w.Lines())
}

func TestWriterCOO(t *testing.T) {
	var val, x, y bytes.Buffer
	w, err := sparse.NewWriter(sparse.COO, &val, &x, &y)
	require.NoError(t, err)

	require.NoError(t, w.Write(sparse.Record{Values: []float64{0.123456789, -4}, Index: []int{3, 0}, Rows: []int{0, 1}}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "0.123457,-4.000000,\n", val.String())
	assert.Equal(t, "3,0,\n", x.String())
	assert.Equal(t, "0,1,\n", y.String())
}

func TestWriterEllpack(t *testing.T) {
	var val, ind bytes.Buffer
	w, err := sparse.NewWriter(sparse.ELLPACK, &val, &ind)
	require.NoError(t, err)

	require.NoError(t, w.Write(sparse.Record{Values: []float64{1, 0}, Index: []int{2, -1}}))
	require.NoError(t, w.Flush())
	assert.Equal(t, "1.000000,0.000000,\n", val.String())
	assert.Equal(t, "2,-1,\n", ind.String())
}

func TestNewWriterStreamCount(t *testing.T) {
	var a, b bytes.Buffer
	_, err := sparse.NewWriter(sparse.CSR, &a, &b)
	require.ErrorIs(t, err, sparse.ErrStreamCount)
	_, err = sparse.NewWriter(sparse.ELLPACK, &a, nil)
	require.ErrorIs(t, err, sparse.ErrStreamCount)
	_, err = sparse.NewWriter(sparse.Format(8), &a)
	require.ErrorIs(t, err, sparse.ErrUnsupportedFormat)
}

var errSink = errors.New("sink failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWriterPropagatesErrors(t *testing.T) {
	var a bytes.Buffer
	w, err := sparse.NewWriter(sparse.ELLPACK, &a, failingWriter{})
	require.NoError(t, err)
	require.NoError(t, w.Write(sparse.Record{Values: []float64{1}, Index: []int{0}}))

	err = w.Flush()
	require.ErrorIs(t, err, errSink)
	assert.Contains(t, err.Error(), "_indices")
}

// TestWriterLargeLine pushes a line past the buffer size so the write itself fails.
func TestWriterLargeLine(t *testing.T) {
	w, err := sparse.NewWriter(sparse.ELLPACK, failingWriter{}, io.Discard)
	require.NoError(t, err)
	rec := sparse.Record{Values: make([]float64, 2048)}
	err = w.Write(rec)
	require.ErrorIs(t, err, errSink)
	assert.Equal(t, 0, w.Lines())
}
