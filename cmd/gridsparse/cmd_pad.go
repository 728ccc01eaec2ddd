package main

import (
	"flag"

	"github.com/katalvlaran/gridsparse/sparse"
)

// runPad pads stream files written earlier by encode.
func (a *app) runPad(args []string) error {
	fs := flag.NewFlagSet("pad", flag.ContinueOnError)
	dir := fs.String("dir", a.cfg.OutDir, "Directory of the stream files")
	prefix := fs.String("prefix", "tmp", "Stream file prefix")
	format := fs.String("format", "csc", "Sparse format: 0|csc, 1|csr, 2|coo, 3|ellpack")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// Legacy form: pad <format>.
	if fs.NArg() == 1 {
		*format = fs.Arg(0)
	}
	f, err := sparse.ParseFormat(*format)
	if err != nil {
		return err
	}

	return a.printPadded(*dir, *prefix, f)
}
