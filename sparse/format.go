package sparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridsparse/grid"
)

// Format selects a sparse storage layout. The numeric values are the
// command-line selectors and must not change.
type Format int

const (
	CSC     Format = 0
	CSR     Format = 1
	COO     Format = 2
	ELLPACK Format = 3
)

// stream describes one output stream of a format.
type stream struct {
	suffix string
	label  string
	float  bool
}

var formatStreams = [...][]stream{
	CSC: {
		{suffix: "_val", label: "Value", float: true},
		{suffix: "_row_idx", label: "Row index"},
		{suffix: "_col_ptr", label: "Column pointer"},
	},
	CSR: {
		{suffix: "_val", label: "Value", float: true},
		{suffix: "_col_idx", label: "Column index"},
		{suffix: "_row_ptr", label: "Row pointer"},
	},
	COO: {
		{suffix: "_val", label: "Value", float: true},
		{suffix: "_x", label: "Column"},
		{suffix: "_y", label: "Row"},
	},
	ELLPACK: {
		{suffix: "_val", label: "Value", float: true},
		{suffix: "_indices", label: "Indices"},
	},
}

var formatNames = [...]string{CSC: "csc", CSR: "csr", COO: "coo", ELLPACK: "ellpack"}

// ParseFormat accepts a numeric selector ("0".."3") or a case-insensitive
// name ("csc", "csr", "coo", "custom", "ellpack").
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		f := Format(n)
		if !f.Valid() {
			return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnsupportedFormat)
		}

		return f, nil
	}
	if s == "custom" {
		return COO, nil
	}
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnsupportedFormat)
}

// Valid reports whether f is one of the four known formats.
func (f Format) Valid() bool { return f >= CSC && f <= ELLPACK }

// String implements fmt.Stringer.
func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// Order is the scan order whose visitation sequence the format's arrays encode.
func (f Format) Order() grid.Order {
	switch f {
	case CSC:
		return grid.ColumnMajor
	case ELLPACK:
		return grid.RowMajorPerRow
	default:
		return grid.RowMajor
	}
}

// Streams is the number of parallel output streams (0 for an invalid format).
func (f Format) Streams() int {
	if !f.Valid() {
		return 0
	}

	return len(formatStreams[f])
}

// Suffixes lists the file-name suffix of every stream, in stream order.
func (f Format) Suffixes() []string {
	return f.collect(func(s stream) string { return s.suffix })
}

// Labels lists a human readable name of every stream, in stream order.
func (f Format) Labels() []string {
	return f.collect(func(s stream) string { return s.label })
}

// FloatStream reports whether stream k carries values rather than integers.
func (f Format) FloatStream(k int) bool {
	if !f.Valid() || k < 0 || k >= len(formatStreams[f]) {
		return false
	}

	return formatStreams[f][k].float
}

func (f Format) collect(pick func(stream) string) []string {
	if !f.Valid() {
		return nil
	}
	out := make([]string, len(formatStreams[f]))
	for i, s := range formatStreams[f] {
		out[i] = pick(s)
	}

	return out
}
