package sparse

import "errors"

var (
	// ErrUnsupportedFormat indicates a format selector outside CSC, CSR, COO and ELLPACK.
	ErrUnsupportedFormat = errors.New("sparse: unsupported format")
	// ErrNotMaterializable indicates a format that has no per-cell encoding without extra input.
	ErrNotMaterializable = errors.New("sparse: format cannot be materialized per cell")
	// ErrStreamCount indicates that the number of output streams does not match the format.
	ErrStreamCount = errors.New("sparse: wrong number of output streams")
	// ErrRowOverflow indicates an ELLPACK row with more nonzeros than the padded width.
	ErrRowOverflow = errors.New("sparse: row exceeds ellpack width")
	// ErrNilScanner indicates that a sizer or encoder was built without a scanner.
	ErrNilScanner = errors.New("sparse: nil scanner")
)
