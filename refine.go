// SPDX-License-Identifier: MIT
// Package wl: Refinement Driver.
//
// Purpose:
//   - Validate input coherence.
//   - Canonicalize the palette into contiguous diagonal/off-diagonal ranges.
//   - Run the fixed-point loop: per-cell build → encode/sort → assign,
//     rewrite into a scratch matrix, swap, repeat until convergence or the
//     n²-1 pass bound is exceeded.
//
// Side effects: none beyond the matrix and palette tables this call owns;
// no process-wide state (spec.md §5).

package wl

// Result reports the outcome of a successful Refine call.
type Result struct {
	Matrix *IndexMatrix // the refined matrix (palette {0,...,D-1})
	D      int          // new palette size d'
	DDiag  int          // new diagonal sub-range boundary d_D'
	Passes int          // number of passes executed
}

// Refine computes the coarsest coherent cellular refinement of a under the
// declared initial palette size dIn.
// MAIN DESCRIPTION:
//   - The single core entry point: refine(A, n, d_in) -> (d_out, status)
//     from spec.md §6, realized as a value-returning Go function.
//
// Implementation:
//   - Stage 1: validate a's coherence against dIn (malformed input is
//     rejected before any refinement work begins).
//   - Stage 2: canonicalize a in place so diagonal/off-diagonal colors
//     occupy contiguous ranges.
//   - Stage 3: loop: begin_pass, build+encode+assign every cell in
//     row-major order into a scratch matrix, finalize_pass, offset
//     off-diagonal local colors by the new diagonal count, swap, check
//     convergence.
//   - Stage 4: enforce the n²-1 termination bound as a guard against logic
//     errors.
//
// Inputs:
//   - a: the matrix to refine; left unchanged when validation rejects it.
//     Otherwise it is relabeled in place and reused as scratch storage, so
//     its contents after the call are unspecified; read Result.Matrix.
//   - dIn: the declared initial palette size.
//   - opts: WithMaxPasses, WithConfirmPass.
//
// Returns:
//   - Result: the refined matrix and its new palette shape.
//
// Errors:
//   - ErrNilMatrix, ErrMalformedInput, ErrOverflow, ErrTooManyPasses.
//
// Determinism:
//   - Row-major traversal order and the xxhash-based fingerprint strategy
//     are fixed; output color numbering is deterministic for a given input
//     but not stable across equivalent pre-relabelings (spec.md §5).
//
// Complexity:
//   - Time O(passes * n^3), Space O(n^2) matrices plus the per-pass
//     signature table (bounded by the number of distinct cell signatures,
//     at most n^2, each holding an n-length key buffer).
func Refine(a *IndexMatrix, dIn uint32, opts ...Option) (Result, error) {
	if a == nil {
		return Result{}, ErrNilMatrix
	}
	n := a.Order()

	if err := validateInput(a, dIn); err != nil {
		return Result{}, err
	}

	o := gatherOptions(n, opts...)

	// Stage 2: initial canonicalisation (spec.md §4.4 step 2).
	canonicalize(a, dIn)

	d := uint64(dIn)
	var dDiag uint64

	pm := newPaletteManager()
	scratch := make([]uint64, n) // reused per-cell contribution buffer
	hashBuf := make([]byte, n*8) // reused per-cell fingerprint buffer

	aPrime, err := NewIndexMatrix(n)
	if err != nil {
		return Result{}, err
	}

	var passes int
	var sameCount int
	required := 1
	if o.confirmPass {
		required = 2
	}

	for {
		pm.beginPass()

		var u, v int
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				buildContributions(a, d, u, v, scratch)
				sortKeys(scratch)
				sig := fingerprint(scratch, hashBuf)

				// The bucket entry must outlive this iteration (scratch is
				// reused for the next cell), so keep an owned copy.
				keysCopy := make([]uint64, n)
				copy(keysCopy, scratch)

				local := pm.assign(u == v, sig, keysCopy)
				_ = aPrime.Set(u, v, local) // bounds guaranteed by loop range
			}
		}

		dDiagNew, dNew, ferr := pm.finalizePass()
		if ferr != nil {
			return Result{}, ferr
		}

		passes++
		if passes > o.maxPasses {
			return Result{}, ErrTooManyPasses
		}

		// Offset off-diagonal local colors into {dDiagNew,...,dNew-1}
		// (spec.md §4.3's finalize_pass concatenation).
		if dDiagNew > 0 {
			for u = 0; u < n; u++ {
				for v = 0; v < n; v++ {
					if u == v {
						continue
					}
					c, _ := aPrime.At(u, v)
					_ = aPrime.Set(u, v, c+uint32(dDiagNew))
				}
			}
		}

		prevD := d
		a, aPrime = aPrime, a
		d = dNew
		dDiag = dDiagNew

		if d == prevD {
			sameCount++
		} else {
			sameCount = 0
		}

		if sameCount >= required {
			break
		}
	}

	return Result{Matrix: a, D: int(d), DDiag: int(dDiag), Passes: passes}, nil
}

// validateInput enforces spec.md §4.4 step 1: shape/palette/disjointness.
// Implementation:
//   - Stage 1: scan every cell; reject any value >= dIn.
//   - Stage 2: partition observed values into diagonal/off-diagonal sets.
//   - Stage 3: reject if the two sets intersect.
//   - Stage 4: reject if the sets' combined size != dIn (given every value
//     observed is < dIn and the sets are disjoint, a combined size of dIn
//     forces the union to be exactly {0,...,dIn-1} by pigeonhole).
//
// Complexity: Time O(n^2), Space O(dIn).
func validateInput(a *IndexMatrix, dIn uint32) error {
	n := a.Order()
	diagSeen := make(map[uint32]struct{})
	offSeen := make(map[uint32]struct{})

	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			c, _ := a.At(u, v) // bounds guaranteed by loop range
			if c >= dIn {
				return ErrMalformedInput
			}
			if u == v {
				diagSeen[c] = struct{}{}
			} else {
				offSeen[c] = struct{}{}
			}
		}
	}

	for c := range diagSeen {
		if _, clash := offSeen[c]; clash {
			return ErrMalformedInput
		}
	}

	if uint32(len(diagSeen)+len(offSeen)) != dIn {
		return ErrMalformedInput
	}

	return nil
}

// canonicalize relabels a in place so diagonal colors occupy
// {0,...,dDiag-1} and off-diagonal colors occupy {dDiag,...,d-1},
// preserving each range's relative order of first appearance under
// row-major traversal. Requires a to already be coherent (disjoint
// diagonal/off-diagonal value sets) — callers must validate first.
//
// Complexity: Time O(n^2), Space O(d).
func canonicalize(a *IndexMatrix, d uint32) {
	n := a.Order()
	diagMap := make(map[uint32]uint32, d)
	offMap := make(map[uint32]uint32, d)
	var nextDiag, nextOff uint32

	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			c, _ := a.At(u, v)
			if u == v {
				if _, ok := diagMap[c]; !ok {
					diagMap[c] = nextDiag
					nextDiag++
				}
			} else {
				if _, ok := offMap[c]; !ok {
					offMap[c] = nextOff
					nextOff++
				}
			}
		}
	}

	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			c, _ := a.At(u, v)
			if u == v {
				_ = a.Set(u, v, diagMap[c])
			} else {
				_ = a.Set(u, v, nextDiag+offMap[c])
			}
		}
	}
}

// Canonicalize renumbers a in place so its diagonal and off-diagonal
// colors occupy contiguous disjoint ranges starting at 0, without checking
// coherence. It is an opt-in wrapper helper (spec.md §9): Refine never
// invokes it implicitly and always rejects a non-canonical but otherwise
// coherent matrix exactly as it would reject an incoherent one. Callers
// that want the "fix colors" behavior spec.md §9 discusses call this
// first, then call Refine.
//
// Inputs:
//   - a: matrix to renumber in place; must already satisfy diagonal/
//     off-diagonal disjointness (use validateInput semantics externally
//     if unsure).
//   - d: the declared palette size bounding a's values.
//
// Complexity: Time O(n^2), Space O(d).
func Canonicalize(a *IndexMatrix, d uint32) {
	canonicalize(a, d)
}
