// SPDX-License-Identifier: MIT

// Package wl - IndexMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer of color indices with the
//     explicit index formula u*n + v.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Prefer the fast-path field access (m.data) inside the refinement hot
//     loop (builder.go/refine.go); use At/Set at package boundaries.
//
// Complexity quicksheet:
//   - NewIndexMatrix: O(n^2) zero-init; At/Set: O(1); Clone: O(n^2).

package wl

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// indexMatrixErrorf wraps an error with a uniform IndexMatrix context and
// callsite coordinates.
// Implementation:
//   - Stage 1: format "IndexMatrix.<method>(u,v): %w".
//
// Complexity:
//   - Time O(1), Space O(1).
func indexMatrixErrorf(method string, u, v int, err error) error {
	return fmt.Errorf("IndexMatrix.%s(%d,%d): %w", method, u, v, err)
}

// IndexMatrix is a dense n×n row-major matrix of color indices.
//   - n holds the matrix order (n == rows == cols by construction).
//   - data is a flat buffer of length n*n in row-major order (offset = u*n + v).
type IndexMatrix struct {
	n    int      // matrix order (n >= 1)
	data []uint32 // contiguous row-major storage (len == n*n)
}

// NewIndexMatrix creates an n×n zero-filled IndexMatrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate 1 <= n <= MaxOrder; else ErrBadShape.
//   - Stage 2: allocate a zero-filled flat buffer.
//
// Inputs:
//   - n: matrix order, 1 <= n <= MaxOrder.
//
// Returns:
//   - *IndexMatrix: newly allocated matrix.
//
// Errors:
//   - ErrBadShape when n is out of range.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewIndexMatrix(n int) (*IndexMatrix, error) {
	if n <= 0 || n > MaxOrder {
		return nil, ErrBadShape
	}

	return &IndexMatrix{
		n:    n,
		data: make([]uint32, n*n),
	}, nil
}

// MaxOrder is the largest supported matrix order, matching the 16-bit
// cell-count domain assumed by the packed contribution-key arithmetic
// (see signature.go).
const MaxOrder = 65535

// Order returns n, the matrix's row/column count. Complexity: O(1).
func (m *IndexMatrix) Order() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *IndexMatrix) indexOf(u, v int) (int, error) {
	if u < 0 || u >= m.n {
		return 0, ErrOutOfRange
	}
	if v < 0 || v >= m.n {
		return 0, ErrOutOfRange
	}

	return u*m.n + v, nil
}

// At returns the color index at (u,v) or ErrOutOfRange.
// Complexity: O(1).
func (m *IndexMatrix) At(u, v int) (uint32, error) {
	off, err := m.indexOf(u, v)
	if err != nil {
		return 0, indexMatrixErrorf(ctxAt, u, v, err)
	}

	return m.data[off], nil
}

// Set stores c at (u,v) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *IndexMatrix) Set(u, v int, c uint32) error {
	off, err := m.indexOf(u, v)
	if err != nil {
		return indexMatrixErrorf(ctxSet, u, v, err)
	}
	m.data[off] = c

	return nil
}

// Clone returns a deep copy with an independent backing buffer.
// Complexity: O(n^2).
func (m *IndexMatrix) Clone() *IndexMatrix {
	cp := make([]uint32, len(m.data))
	copy(cp, m.data)

	return &IndexMatrix{n: m.n, data: cp}
}

// String renders a readable row-wise dump for diagnostics.
// Not intended for hot paths or large matrices.
func (m *IndexMatrix) String() string {
	var b strings.Builder
	var u, v, base int
	for u = 0; u < m.n; u++ {
		base = u * m.n
		for v = 0; v < m.n; v++ {
			if v > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", m.data[base+v])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
