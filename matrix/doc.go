// Package matrix offers a dense matrix type and graph-to-matrix builders.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set/Clone.
//   - AdjacencyMatrix with O(1) edge-weight lookups and O(V²) memory, built
//     from a core.Graph via BuildAdjacency.
//   - FloydWarshall all-pairs shortest paths for metric-closure construction.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V² + E) build time are acceptable.
//
// See the examples in package core for graph construction patterns.
package matrix
