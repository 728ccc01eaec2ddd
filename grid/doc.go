// Package grid partitions a dense matrix into a rectangular process grid and
// walks the nonzeros of one grid cell at a time.
//
// What:
//
//   - Layout derives the cell size from the matrix shape and the grid shape
//     (Px columns × Py rows of submatrices) by ceiling division and maps global
//     coordinates to (cell, local offset).
//   - View is the logical, never materialized window of one cell, clipped to
//     the matrix bounds. Cells in the last grid row/column may be smaller, or
//     even empty, when the matrix does not divide evenly.
//   - Scanner enumerates the nonzeros of a View lazily, in column-major or
//     row-major order, or as per-row counts.
//
// Why:
//
//	Sparse pointer/index arrays encode position by visitation sequence. One
//	scanner shared by every sizing and encoding routine keeps that sequence
//	identical everywhere.
//
// Complexity:
//
//   - NewLayout, Cell, Locate: O(1).
//   - Entries, RowCounts: O(CellHeight × CellWidth) per View, no allocations.
//
// Errors:
//
//   - ErrBadGrid: Px or Py not positive.
//   - ErrBadShape: matrix rows or cols not positive.
//   - ErrOutOfRange: grid or matrix index outside bounds.
//   - ErrShapeMismatch: scanner matrix differs from the layout shape.
package grid
