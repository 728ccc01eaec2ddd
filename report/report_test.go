package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gridsparse/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s, err := report.Summarize([]int{2, 4, 6, 0})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Cells)
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 6.0, s.Max)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, 2.0, s.Imbalance, 1e-12)

	s, err = report.Summarize([]int{0, 0})
	require.NoError(t, err)
	assert.Zero(t, s.Imbalance)

	_, err = report.Summarize(nil)
	require.ErrorIs(t, err, report.ErrNoData)
}

func TestLoadChartRender(t *testing.T) {
	c, err := report.NewLoadChart("csc 4x4", []int{3, 1, 4, 1, 5, 9, 2, 6})
	require.NoError(t, err)

	var svg bytes.Buffer
	require.NoError(t, c.Render(&svg, "svg"))
	assert.Contains(t, svg.String(), "<svg")

	var png bytes.Buffer
	require.NoError(t, c.Render(&png, "PNG"))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	require.ErrorIs(t, c.Render(&png, "gif"), report.ErrUnsupportedImage)
}

func TestLoadChartSave(t *testing.T) {
	c, err := report.NewLoadChart("loads", []int{0, 0, 7})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "loads.pdf")
	require.NoError(t, c.Save(path))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got, []byte("%PDF")))

	require.ErrorIs(t, c.Save(filepath.Join(t.TempDir(), "loads.txt")), report.ErrUnsupportedImage)
}

func TestNewLoadChartEmpty(t *testing.T) {
	_, err := report.NewLoadChart("x", nil)
	require.ErrorIs(t, err, report.ErrNoData)

	c := &report.LoadChart{}
	_, err = c.Plot()
	require.ErrorIs(t, err, report.ErrNoData)
}
