package main

import (
	"flag"
	"fmt"

	"github.com/katalvlaran/gridsparse/report"
)

// runPlot charts the nonzeros of every grid cell.
func (a *app) runPlot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	var sf sweepFlags
	sf.register(fs, a)
	out := fs.String("o", "loads.png", "Output image (.png, .svg or .pdf)")
	if err := sf.parse(fs, args); err != nil {
		return err
	}

	s, m, err := sf.session(a.log)
	if err != nil {
		return err
	}
	loads := s.Loads()
	title := fmt.Sprintf("%dx%d, %g%% on %dx%d grid", m.Rows(), m.Cols(), sf.density, sf.py, sf.px)
	chart, err := report.NewLoadChart(title, loads)
	if err != nil {
		return err
	}
	if err = chart.Save(*out); err != nil {
		return err
	}

	sum, err := report.Summarize(loads)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "cells: %d  min: %.0f  max: %.0f  mean: %.2f  imbalance: %.2f\n",
		sum.Cells, sum.Min, sum.Max, sum.Mean, sum.Imbalance)
	a.log.WithField("path", *out).Info("chart saved")

	return nil
}
