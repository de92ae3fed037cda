// SPDX-License-Identifier: MIT
// Package wl: Cell Contribution Builder.
//
// Purpose:
//   - For a fixed cell (u,v), deterministically enumerate the sequence of
//     ordered pairs (A[u,w], A[w,v]) for w in {0,...,n-1}.
//   - Pure function of (A, d, u, v): no mutation of A during a pass.

package wl

// buildContributions fills dst (length n) with the packed contribution
// keys for cell (u,v): dst[w] = pack(A[u,w], A[w,v], d).
// MAIN DESCRIPTION:
//   - Enumerate w in fixed ascending order and pack each contribution pair.
//
// Implementation:
//   - Stage 1: read row u (A[u,w]) and column v (A[w,v]) directly off the
//     flat buffer to avoid repeated bounds-checked At calls in the hot loop.
//   - Stage 2: pack each pair via packKey.
//
// Inputs:
//   - a: current matrix (not mutated).
//   - d: current palette size (pack modulus).
//   - u, v: cell coordinates.
//   - dst: caller-owned scratch buffer, len(dst) == a.Order(); overwritten.
//
// Determinism:
//   - Fixed ascending w order.
//
// Complexity:
//   - Time O(n), Space O(1) beyond dst.
func buildContributions(a *IndexMatrix, d uint64, u, v int, dst []uint64) {
	n := a.n
	rowBase := u * n // A[u,w] lives at rowBase+w
	var w int
	var c1, c2 uint32
	for w = 0; w < n; w++ {
		c1 = a.data[rowBase+w] // A[u,w]
		c2 = a.data[w*n+v]     // A[w,v]
		dst[w] = packKey(c1, c2, d)
	}
}
