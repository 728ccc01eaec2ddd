// Package memory models the per-process memory a grid cell needs on a
// small-memory processing element: the dense operands B (Kt×M) and C (Nt×M)
// plus the sparse buffers of A in the chosen format, all in 4-byte words.
//
// Footprints can be computed from measured sparse.Stats (exact worst case of
// a concrete matrix) or from EstimateNNZ, a normal-approximation upper bound
// on the nonzeros of a random Nt×Kt tile that holds on every tile of the grid
// with a given probability.
//
// Search enumerates the grids that divide an N×K matrix evenly and keeps
// those whose estimated footprint fits a Budget.
package memory
