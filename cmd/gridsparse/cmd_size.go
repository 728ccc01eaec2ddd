package main

import (
	"flag"
	"fmt"

	"github.com/katalvlaran/gridsparse/memory"
)

// runSize prints the grid-wide maxima one per line, in the format's result order.
func (a *app) runSize(args []string) error {
	fs := flag.NewFlagSet("size", flag.ContinueOnError)
	var sf sweepFlags
	sf.register(fs, a)
	denseWidth := fs.Int("M", 0, "Dense operand width; when > 0 also print the per-element footprint")
	if err := sf.parse(fs, args); err != nil {
		return err
	}

	s, _, err := sf.session(a.log)
	if err != nil {
		return err
	}
	st := s.SizeQuery()
	for _, v := range st.Result() {
		fmt.Fprintln(a.stdout, v)
	}

	if *denseWidth > 0 {
		bytes, err := memory.Bytes(s.Format(), memory.TileOf(s.Layout(), *denseWidth), st)
		if err != nil {
			return err
		}
		b := a.cfg.Budget()
		fmt.Fprintf(a.stdout, "bytes: %d of %d available, fits: %t\n", bytes, b.Available(), b.Fits(bytes))
	}

	return nil
}
