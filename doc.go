// Package gridsparse splits a dense matrix over a rectangular grid of
// processing elements and prepares every submatrix for sparse storage.
//
// What is in the box?
//
//	• matrix/    row-major Dense, random generation, CSV and gonum adapters
//	• grid/      ceiling-division Layout, clipped cell Views, the nonzero Scanner
//	• sparse/    CSC, CSR, COO and ELLPACK sizing, encoding, stream writers, padding
//	• session/   one sweep over the grid: SizeQuery, Materialize, Loads
//	• memory/    per-element footprint model and probabilistic nnz bounds
//	• report/    per-cell load charts
//	• config/    environment and .env settings
//	• cmd/gridsparse  the command-line front end
//
// Two modes:
//
//   - size-query: for every cell, count the buffer lengths it needs in a
//     format and keep the maximum over the grid. Each element allocates
//     that worst case once.
//   - materialize: write each cell's arrays as parallel text streams; line
//     i*Px + j of every stream belongs to cell (i, j).
//
// Quick ASCII example, a 5×5 matrix on a 2×2 grid (cells are 3×3, clipped):
//
//	┌───────┬─────┐
//	│ (0,0) │(0,1)│  rows 0..2
//	│  3×3  │ 3×2 │
//	├───────┼─────┤
//	│ (1,0) │(1,1)│  rows 3..4
//	│  2×3  │ 2×2 │
//	└───────┴─────┘
//
//	go get github.com/katalvlaran/gridsparse
package gridsparse
