// Package session drives one sweep over a process grid: it partitions a
// dense matrix, then either sizes every cell in a sparse format (SizeQuery)
// or writes every cell to parallel output streams (Materialize).
//
// Cells are visited in row-major grid order, so line k of every output
// stream belongs to cell k = i*Px + j. The matrix must not change while a
// Session built on it is in use.
//
// All configuration failures are reported by New or before the first write
// and match ErrConfiguration as well as the underlying sentinel
// (grid.ErrBadGrid, sparse.ErrUnsupportedFormat, sparse.ErrStreamCount, ...).
package session
