// SPDX-License-Identifier: MIT
// Package wl: sentinel error set.
// All algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. No public operation panics on caller-triggered conditions;
// panics are reserved for programmer errors in private helpers.

package wl

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed "wl: ..." for consistency and easy grepping.
// Do not %w wrap these sentinels when returning directly; wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary when context is needed —
// callers still match via errors.Is.

var (
	// ErrBadShape is returned when a matrix's declared shape is invalid
	// (n<=0, or n disagrees with the number of rows/columns supplied).
	ErrBadShape = errors.New("wl: invalid shape")

	// ErrOutOfRange indicates a cell index outside [0,n).
	ErrOutOfRange = errors.New("wl: index out of range")

	// ErrMalformedInput covers every input-validation failure the
	// Refinement Driver detects before doing any refinement work: a
	// diagonal value also used off-diagonal, a color value outside
	// [0,d), or the declared d not matching the union of observed values.
	ErrMalformedInput = errors.New("wl: malformed input coloring")

	// ErrOverflow indicates the palette would grow past MaxPaletteSize, or
	// a packed contribution key would not fit the 64-bit accumulator.
	ErrOverflow = errors.New("wl: palette overflow")

	// ErrTooManyPasses indicates the fixed-point loop exceeded its
	// n²-1 termination bound without converging — a guard against logic
	// errors, never expected to trigger on a conforming implementation.
	ErrTooManyPasses = errors.New("wl: exceeded pass bound")

	// ErrNilMatrix indicates a nil *IndexMatrix receiver or argument.
	ErrNilMatrix = errors.New("wl: nil matrix")
)
