package main

import (
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/gridsparse/memory"
	"github.com/katalvlaran/gridsparse/sparse"
)

// runPlan lists the evenly dividing grids whose estimated per-element
// footprint fits the configured budget, largest tile first.
func (a *app) runPlan(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	n := fs.Int("n", 0, "Matrix height N")
	k := fs.Int("k", 0, "Matrix width K")
	m := fs.Int("M", 64, "Dense operand width")
	density := fs.Float64("density", 10, "Nonzero density in percent")
	format := fs.String("format", "csc", "Sparse format: 0|csc, 1|csr, 2|coo, 3|ellpack")
	maxPx := fs.Int("max-px", 757, "Largest grid width")
	maxPy := fs.Int("max-py", 996, "Largest grid height")
	guarantee := fs.Float64("guarantee", memory.DefaultGuarantee, "Probability that every tile fits")
	top := fs.Int("top", 10, "Print at most this many grids (0: all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f, err := sparse.ParseFormat(*format)
	if err != nil {
		return err
	}

	cfgs, err := memory.Search(memory.Query{
		N: *n, K: *k, M: *m,
		Density:   *density,
		Format:    f,
		MaxPx:     *maxPx,
		MaxPy:     *maxPy,
		Guarantee: *guarantee,
	}, a.cfg.Budget())
	if err != nil {
		return err
	}
	if *top > 0 && len(cfgs) > *top {
		cfgs = cfgs[:*top]
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "py\tpx\tNt\tKt\tnnz\tbytes")
	for _, c := range cfgs {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\n", c.Py, c.Px, c.Tile.Nt, c.Tile.Kt, c.NNZ, c.Bytes)
	}

	return tw.Flush()
}
