package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/gridsparse/matrix"
	"github.com/katalvlaran/gridsparse/session"
	"github.com/katalvlaran/gridsparse/sparse"
	"github.com/sirupsen/logrus"
)

// sweepFlags are shared by every command that partitions a matrix.
type sweepFlags struct {
	n, m     int
	density  float64
	px, py   int
	format   string
	input    string
	cacheDir string
	seed     int64
}

func (sf *sweepFlags) register(fs *flag.FlagSet, a *app) {
	fs.IntVar(&sf.n, "n", 0, "Matrix height (rows)")
	fs.IntVar(&sf.m, "m", 0, "Matrix width (columns)")
	fs.Float64Var(&sf.density, "density", 10, "Nonzero density in percent (0..100)")
	fs.IntVar(&sf.px, "px", 1, "Grid width (cells per grid row)")
	fs.IntVar(&sf.py, "py", 1, "Grid height (cells per grid column)")
	fs.StringVar(&sf.format, "format", "csc", "Sparse format: 0|csc, 1|csr, 2|coo, 3|ellpack")
	fs.StringVar(&sf.input, "input", "", "Read the matrix from this CSV instead of the random cache")
	fs.StringVar(&sf.cacheDir, "cache-dir", a.cfg.CacheDir, "Directory of cached random matrices")
	fs.Int64Var(&sf.seed, "seed", a.cfg.Seed, "Seed of generated matrices")
}

// positional accepts the legacy argument order
// height width density grid_height grid_width format.
func (sf *sweepFlags) positional(args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 6:
	default:
		return fmt.Errorf("want 0 or 6 positional arguments (height width density grid_height grid_width format), got %d", len(args))
	}
	ints := make([]int, 0, 5)
	for i, s := range args[:5] {
		if i == 2 {
			d, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("density %q: %w", s, err)
			}
			sf.density = d
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("argument %d %q: %w", i+1, s, err)
		}
		ints = append(ints, v)
	}
	sf.n, sf.m, sf.py, sf.px = ints[0], ints[1], ints[2], ints[3]
	sf.format = args[5]

	return nil
}

func (sf *sweepFlags) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	return sf.positional(fs.Args())
}

// session loads the matrix and opens a session on it.
func (sf *sweepFlags) session(log *logrus.Logger) (*session.Session, *matrix.Dense, error) {
	f, err := sparse.ParseFormat(sf.format)
	if err != nil {
		return nil, nil, err
	}
	m, err := sf.matrix(log)
	if err != nil {
		return nil, nil, err
	}
	s, err := session.New(m, sf.px, sf.py, f, session.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}

	return s, m, nil
}

func (sf *sweepFlags) matrix(log *logrus.Logger) (*matrix.Dense, error) {
	if err := matrix.ValidateShape(sf.n, sf.m); err != nil {
		return nil, fmt.Errorf("-n %d -m %d: %w", sf.n, sf.m, err)
	}
	if sf.input != "" {
		log.WithField("path", sf.input).Debug("reading matrix")
		return matrix.LoadCSV(sf.input, sf.n, sf.m)
	}

	return cachedRandom(sf.cacheDir, sf.n, sf.m, sf.density, sf.seed, log)
}

// cachePath names the cache file of an n×m matrix of the given density.
func cachePath(dir string, n, m int, density float64) string {
	return filepath.Join(dir, fmt.Sprintf("mat_%d_%d_%s.txt", n, m, strconv.FormatFloat(density, 'f', -1, 64)))
}

// cachedRandom reads the cached matrix when present, otherwise generates and
// stores it. The seed is not part of the file name.
func cachedRandom(dir string, n, m int, density float64, seed int64, log *logrus.Logger) (*matrix.Dense, error) {
	path := cachePath(dir, n, m, density)
	entry := log.WithField("path", path)

	d, err := matrix.LoadCSV(path, n, m)
	if err == nil {
		entry.Debug("matrix cache hit")
		return d, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	d, err = matrix.Random(n, m, density, matrix.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	if err = matrix.SaveCSV(path, d); err != nil {
		return nil, err
	}
	// Later runs read the rounded cache, so this one does too.
	if d, err = matrix.LoadCSV(path, n, m); err != nil {
		return nil, err
	}
	entry.WithField("nnz", d.NNZ()).Info("matrix generated")

	return d, nil
}
