package sparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// PadFill replaces every missing field of a padded stream.
const PadFill = "-1"

// PadSuffix is appended to a stream name for its padded copy.
const PadSuffix = "_pad"

// Pad reads a ragged comma-separated stream and writes it back with every
// line widened to the widest one, missing or empty fields set to PadFill.
// A last column that is empty on every line, left by trailing commas, is
// dropped. Returns the padded width. Line count and order are preserved.
func Pad(r io.Reader, w io.Writer) (int, error) {
	var lines [][]string
	br := bufio.NewReader(r)
	for {
		s, err := br.ReadString('\n')
		if len(s) > 0 {
			s = strings.TrimRight(s, "\r\n")
			lines = append(lines, strings.Split(s, ","))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("Pad: read line %d: %w", len(lines), err)
		}
	}

	width := 0
	for _, fields := range lines {
		width = max(width, len(fields))
	}
	if width > 0 && lastColumnEmpty(lines, width-1) {
		width--
	}

	bw := bufio.NewWriter(w)
	for _, fields := range lines {
		for k := 0; k < width; k++ {
			if k > 0 {
				bw.WriteByte(',')
			}
			if k < len(fields) && fields[k] != "" {
				bw.WriteString(fields[k])
			} else {
				bw.WriteString(PadFill)
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("Pad: %w", err)
	}

	return width, nil
}

func lastColumnEmpty(lines [][]string, k int) bool {
	for _, fields := range lines {
		if k < len(fields) && fields[k] != "" {
			return false
		}
	}

	return true
}

// PadFiles pads every stream file of f under dir/prefix into
// <prefix><suffix>_pad.csv and returns the padded widths in stream order.
func PadFiles(dir, prefix string, f Format) ([]int, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("PadFiles(%d): %w", int(f), ErrUnsupportedFormat)
	}
	src := StreamPaths(dir, prefix, f)
	dst := StreamPaths(dir, prefix, f)
	widths := make([]int, len(src))
	for i := range src {
		dst[i] = strings.TrimSuffix(dst[i], FileExt) + PadSuffix + FileExt
		n, err := padFile(src[i], dst[i])
		if err != nil {
			return nil, err
		}
		widths[i] = n
	}

	return widths, nil
}

func padFile(src, dst string) (n int, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("PadFiles: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("PadFiles: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("PadFiles: close %s: %w", dst, cerr)
		}
	}()

	return Pad(in, out)
}
