// Package sparse sizes and encodes grid cells in the CSC, CSR, COO and
// ELLPACK sparse formats.
//
// What:
//
//   - Sizer measures the buffer lengths one cell needs in a format; Stats folds
//     those measurements over the grid with max, giving the worst case any
//     process must allocate.
//   - Encoder materializes a cell as a Record (values, index, pointer arrays),
//     visiting nonzeros in the order the format prescribes.
//   - Writer serializes Records as parallel text streams, one line per cell,
//     so that line k of every stream describes grid cell k.
//   - EllpackEncoder pads each row to a fixed width known in advance.
//   - Pad widens a ragged stream into a rectangular CSV.
//
// Stream layout per format:
//
//	CSC      _val  _row_idx  _col_ptr
//	CSR      _val  _col_idx  _row_ptr
//	COO      _val  _x        _y          (_x local columns, _y local rows)
//	ELLPACK  _val  _indices
//
// Line grammar: value lines print every value with %f followed by a comma;
// index lines print every integer followed by a comma; pointer lines join
// integers with commas and carry no trailing comma. Empty cells still write
// one (possibly empty) line per stream.
//
// Errors:
//
//   - ErrUnsupportedFormat: selector outside CSC..ELLPACK.
//   - ErrNotMaterializable: plain encoding requested for ELLPACK.
//   - ErrStreamCount: wrong number of output streams for a format.
//   - ErrRowOverflow: an ELLPACK row holds more nonzeros than the width.
package sparse
