// Package report renders the per-cell load of a grid sweep: one bar per cell
// (row-major cell index on X, nonzeros on Y) and a dashed line at the mean.
package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrNoData indicates an empty load slice.
	ErrNoData = errors.New("report: no data")
	// ErrUnsupportedImage indicates an image format other than png, svg or pdf.
	ErrUnsupportedImage = errors.New("report: unsupported image format")
)

// Default canvas size.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var (
	barColor  = color.RGBA{R: 66, G: 133, B: 244, A: 255}
	meanColor = color.RGBA{R: 219, G: 68, B: 55, A: 255}
)

// Summary describes how evenly nonzeros are spread over the cells.
type Summary struct {
	Cells     int
	Min, Max  float64
	Mean      float64
	Imbalance float64 // Max / Mean, 0 when the grid holds no nonzero
}

// Summarize computes the Summary of loads.
func Summarize(loads []int) (Summary, error) {
	if len(loads) == 0 {
		return Summary{}, ErrNoData
	}
	xs := toFloats(loads)
	s := Summary{
		Cells: len(xs),
		Min:   floats.Min(xs),
		Max:   floats.Max(xs),
		Mean:  stat.Mean(xs, nil),
	}
	if s.Mean > 0 {
		s.Imbalance = s.Max / s.Mean
	}

	return s, nil
}

// LoadChart is a bar chart of per-cell nonzero counts.
type LoadChart struct {
	Title  string
	Loads  []int
	Width  vg.Length
	Height vg.Length
}

// NewLoadChart returns a chart of loads with the default canvas size.
func NewLoadChart(title string, loads []int) (*LoadChart, error) {
	if len(loads) == 0 {
		return nil, fmt.Errorf("NewLoadChart: %w", ErrNoData)
	}

	return &LoadChart{Title: title, Loads: loads, Width: DefaultWidth, Height: DefaultHeight}, nil
}

// Plot builds the gonum plot.
func (c *LoadChart) Plot() (*plot.Plot, error) {
	sum, err := Summarize(c.Loads)
	if err != nil {
		return nil, fmt.Errorf("Plot: %w", err)
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "cell (i*Px + j)"
	p.Y.Label.Text = "nonzeros"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(plotter.Values(toFloats(c.Loads)), barWidth(len(c.Loads)))
	if err != nil {
		return nil, fmt.Errorf("Plot: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0

	mean := plotter.NewFunction(func(float64) float64 { return sum.Mean })
	mean.XMin, mean.XMax = -0.5, float64(len(c.Loads))-0.5
	mean.Color = meanColor
	mean.Width = vg.Points(1.5)
	mean.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p.Add(bars, mean)
	p.Legend.Add("nonzeros", bars)
	p.Legend.Add(fmt.Sprintf("mean %.1f", sum.Mean), mean)
	p.Legend.Top = true

	return p, nil
}

// barWidth shrinks bars as the number of cells grows.
func barWidth(n int) vg.Length {
	w := vg.Points(480 / float64(n))

	return min(max(w, vg.Points(1)), vg.Points(24))
}

// Save writes the chart to path; the extension selects png, svg or pdf.
func (c *LoadChart) Save(path string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if err := checkImage(ext); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	p, err := c.Plot()
	if err != nil {
		return err
	}
	if err = p.Save(c.Width, c.Height, path); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}

// Render draws the chart in the named image format (png, svg, pdf) to w.
func (c *LoadChart) Render(w io.Writer, format string) error {
	format = strings.ToLower(format)
	if err := checkImage(format); err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	p, err := c.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(c.Width, c.Height, format)
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("Render: %w", err)
	}

	return nil
}

func checkImage(format string) error {
	switch format {
	case "png", "svg", "pdf":
		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnsupportedImage)
	}
}

func toFloats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}
