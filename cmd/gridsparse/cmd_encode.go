package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/katalvlaran/gridsparse/session"
	"github.com/katalvlaran/gridsparse/sparse"
)

// runEncode writes every grid cell to the stream files of the format and,
// with -pad, pads them afterwards.
func (a *app) runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	var sf sweepFlags
	sf.register(fs, a)
	outDir := fs.String("out", a.cfg.OutDir, "Output directory")
	prefix := fs.String("prefix", "tmp", "Stream file prefix")
	width := fs.Int("ellpack-width", session.AutoWidth, "ELLPACK row width (-1: grid-wide maximum)")
	pad := fs.Bool("pad", false, "Also write padded <prefix>_*_pad.csv files and print their widths")
	if err := sf.parse(fs, args); err != nil {
		return err
	}

	s, _, err := sf.session(a.log)
	if err != nil {
		return err
	}
	if s.Format() == sparse.ELLPACK {
		// Reject a short width before CreateFiles truncates earlier output.
		if *width, err = s.EllpackWidth(*width); err != nil {
			return err
		}
	}
	files, err := sparse.CreateFiles(*outDir, *prefix, s.Format())
	if err != nil {
		return err
	}
	if s.Format() == sparse.ELLPACK {
		err = s.MaterializeEllpack(*width, files.Writers()...)
	} else {
		err = s.Materialize(files.Writers()...)
	}
	if err = errors.Join(err, files.Close()); err != nil {
		return err
	}
	for _, p := range files.Paths() {
		a.log.WithField("path", p).Debug("stream written")
	}

	if *pad {
		return a.printPadded(*outDir, *prefix, s.Format())
	}

	return nil
}

// printPadded pads every stream and prints "<label> length:" and its width.
func (a *app) printPadded(dir, prefix string, f sparse.Format) error {
	widths, err := sparse.PadFiles(dir, prefix, f)
	if err != nil {
		return err
	}
	for i, label := range f.Labels() {
		fmt.Fprintf(a.stdout, "%s length:\n%d\n", label, widths[i])
	}

	return nil
}
