// Package matrix holds the dense input of a grid partitioning run.
//
// What:
//
//   - Dense: a row-major float64 matrix (offset i*cols + j) with safe accessors.
//   - Random: a seeded generator that places an exact number of nonzeros.
//   - ReadCSV / WriteCSV: the comma-separated dense exchange format.
//   - FromGonum / ToGonum: interop with gonum.org/v1/gonum/mat.
//
// Why:
//
//	Every downstream stage (grid layout, nonzero scanning, sparse sizing and
//	encoding) treats the dense matrix as immutable input. Keeping the storage
//	flat and row-major lets the scanner walk any submatrix window with plain
//	offset arithmetic and no copies.
//
// Complexity:
//
//   - NewDense, Random, ReadCSV: O(r*c) time and memory.
//   - At/Set: O(1). NNZ: O(r*c).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols not positive.
//   - ErrOutOfRange: index outside the matrix.
//   - ErrNaNInf: non-finite value under the numeric policy.
//   - ErrDataLength: backing data does not match rows*cols.
//   - ErrInvalidDensity: density outside [0, 100] percent.
//   - ErrMalformedCSV: CSV record count or field could not be parsed.
package matrix
