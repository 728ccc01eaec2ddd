package sparse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileExt is the extension of every stream file.
const FileExt = ".csv"

// Files is the set of stream files of one format: <dir>/<prefix><suffix>.csv.
type Files struct {
	paths []string
	files []*os.File
}

// StreamPaths lists the stream file paths of f without touching the disk.
func StreamPaths(dir, prefix string, f Format) []string {
	suffixes := f.Suffixes()
	paths := make([]string, len(suffixes))
	for i, s := range suffixes {
		paths[i] = filepath.Join(dir, prefix+s+FileExt)
	}

	return paths
}

// CreateFiles creates (truncating) every stream file of f. On failure the
// files already opened are closed again.
func CreateFiles(dir, prefix string, f Format) (*Files, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("CreateFiles(%d): %w", int(f), ErrUnsupportedFormat)
	}
	fs := &Files{paths: StreamPaths(dir, prefix, f)}
	for _, p := range fs.paths {
		fh, err := os.Create(p)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("CreateFiles: %w", err), fs.Close())
		}
		fs.files = append(fs.files, fh)
	}

	return fs, nil
}

// Paths returns the stream file paths in stream order.
func (fs *Files) Paths() []string { return fs.paths }

// Writers returns the open files as writers, in stream order.
func (fs *Files) Writers() []io.Writer {
	ws := make([]io.Writer, len(fs.files))
	for i, f := range fs.files {
		ws[i] = f
	}

	return ws
}

// Close closes every file, even when an earlier close fails.
func (fs *Files) Close() error {
	var errs []error
	for _, f := range fs.files {
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", f.Name(), err))
		}
	}
	fs.files = nil

	return errors.Join(errs...)
}
