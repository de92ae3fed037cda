// SPDX-License-Identifier: MIT

// Package wlio implements the textual matrix format at the CLI boundary
// (spec.md §6):
//
//	<d>
//	<n>
//	<row_0 tokens separated by whitespace>
//	...
//	<row_{n-1} tokens>
//
// Tokens are non-negative decimal integers. This package never relaxes or
// interprets the core's validation: a palette/shape mismatch surfaces as a
// parse error here, and any remaining coherence violation is left for
// wl.Refine to reject.
//
// AI-Hints:
//   - bufio.Scanner with bufio.ScanWords is the stdlib-idiomatic tokenizer
//     for this whitespace-delimited numeric format; no third-party parser
//     in the dependency set improves on it for a format this simple
//     (DESIGN.md).
package wlio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/kamalov-wl/wl"
)

// scannerBufSize bounds a single token's length; generous for decimal
// encodings of values up to MaxPaletteSize.
const scannerBufSize = 64 * 1024

// Read parses the textual matrix format from r.
// MAIN DESCRIPTION:
//   - Tokenizes r on whitespace runs and decodes <d>, <n>, then n*n cell
//     values in row-major order.
//
// Implementation:
//   - Stage 1: read and parse d, validate 1 <= d <= wl.MaxPaletteSize.
//   - Stage 2: read and parse n, validate 1 <= n <= wl.MaxOrder.
//   - Stage 3: allocate the matrix; read n*n tokens, validating each is
//     < d, writing directly into row-major cells.
//
// Returns:
//   - the parsed matrix, its declared palette size d, nil error on success.
//
// Errors:
//   - a wrapped io/strconv error on malformed tokenization; callers should
//     treat any non-nil error as spec.md §7's "malformed input" at the CLI
//     boundary (the core's own validation runs separately once Refine is
//     called).
//
// Complexity:
//   - Time O(n^2), Space O(n^2) for the returned matrix.
func Read(r io.Reader) (a *wl.IndexMatrix, d uint32, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, scannerBufSize), scannerBufSize)
	sc.Split(bufio.ScanWords)

	nextToken := func(label string) (uint64, error) {
		if !sc.Scan() {
			if serr := sc.Err(); serr != nil {
				return 0, fmt.Errorf("wlio: reading %s: %w", label, serr)
			}
			return 0, fmt.Errorf("wlio: reading %s: %w", label, io.ErrUnexpectedEOF)
		}
		v, perr := strconv.ParseUint(sc.Text(), 10, 64)
		if perr != nil {
			return 0, fmt.Errorf("wlio: parsing %s %q: %w", label, sc.Text(), perr)
		}
		return v, nil
	}

	d64, err := nextToken("d")
	if err != nil {
		return nil, 0, err
	}
	if d64 == 0 || d64 > wl.MaxPaletteSize {
		return nil, 0, fmt.Errorf("wlio: d=%d out of range [1,%d]", d64, uint64(wl.MaxPaletteSize))
	}

	n64, err := nextToken("n")
	if err != nil {
		return nil, 0, err
	}
	if n64 == 0 || n64 > uint64(wl.MaxOrder) {
		return nil, 0, fmt.Errorf("wlio: n=%d out of range (0,%d]", n64, wl.MaxOrder)
	}
	n := int(n64)

	a, err = wl.NewIndexMatrix(n)
	if err != nil {
		return nil, 0, fmt.Errorf("wlio: %w", err)
	}

	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			c64, terr := nextToken("cell")
			if terr != nil {
				return nil, 0, terr
			}
			if c64 >= d64 {
				return nil, 0, fmt.Errorf("wlio: cell (%d,%d)=%d out of declared range [0,%d)", u, v, c64, d64)
			}
			if serr := a.Set(u, v, uint32(c64)); serr != nil {
				return nil, 0, fmt.Errorf("wlio: %w", serr)
			}
		}
	}

	return a, uint32(d64), nil
}

// Write renders a in the textual matrix format with declared palette size
// d, buffering writes for throughput.
// Implementation:
//   - Stage 1: write the "<d>\n<n>\n" header.
//   - Stage 2: write n rows of space-separated decimal tokens.
//
// Complexity:
//   - Time O(n^2), Space O(1) beyond the buffered writer.
func Write(w io.Writer, a *wl.IndexMatrix, d uint32) error {
	bw := bufio.NewWriter(w)
	n := a.Order()

	if _, err := fmt.Fprintf(bw, "%d\n%d\n", d, n); err != nil {
		return fmt.Errorf("wlio: %w", err)
	}

	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if v > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("wlio: %w", err)
				}
			}
			c, err := a.At(u, v)
			if err != nil {
				return fmt.Errorf("wlio: %w", err)
			}
			if _, err := fmt.Fprintf(bw, "%d", c); err != nil {
				return fmt.Errorf("wlio: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("wlio: %w", err)
		}
	}

	return bw.Flush()
}
