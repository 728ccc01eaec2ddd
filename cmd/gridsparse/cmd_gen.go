package main

import (
	"flag"
	"fmt"

	"github.com/katalvlaran/gridsparse/matrix"
)

// runGen writes a random matrix as CSV, by default into the matrix cache.
func (a *app) runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	n := fs.Int("n", 0, "Matrix height (rows)")
	m := fs.Int("m", 0, "Matrix width (columns)")
	density := fs.Float64("density", 10, "Nonzero density in percent (0..100)")
	seed := fs.Int64("seed", a.cfg.Seed, "Random seed")
	out := fs.String("o", "", "Output CSV (default: cache file in -cache-dir)")
	cacheDir := fs.String("cache-dir", a.cfg.CacheDir, "Directory of cached random matrices")
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := matrix.Random(*n, *m, *density, matrix.WithSeed(*seed))
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = cachePath(*cacheDir, *n, *m, *density)
	}
	if err = matrix.SaveCSV(path, d); err != nil {
		return err
	}
	if d, err = matrix.LoadCSV(path, *n, *m); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s: %dx%d, %d nonzeros\n", path, *n, *m, d.NNZ())

	return nil
}
