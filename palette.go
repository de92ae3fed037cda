// SPDX-License-Identifier: MIT
// Package wl: Palette Manager.
//
// Purpose:
//   - Translate cell signatures into new color indices for the next pass.
//   - Keep diagonal and off-diagonal color ranges disjoint (coherence).
//   - Detect overflow against MaxPaletteSize.
//
// Contract (spec.md §4.3):
//   - beginPass clears the signature->color maps.
//   - assign returns the color assigned to a cell's signature within its
//     own range (diagonal or off-diagonal), allocating a fresh local index
//     on first sight. Local indices start at 0 in each range; the driver
//     offsets off-diagonal local indices by the final diagonal count after
//     finalizePass (see refine.go).
//   - finalizePass reports the new dDiag and d (total palette size),
//     failing with ErrOverflow if d would exceed MaxPaletteSize.

package wl

// bucketEntry pairs a cell's sorted key sequence with the local color it
// was assigned, so a signature hash collision can be resolved by full
// equality (spec.md §4.2's collision policy).
type bucketEntry struct {
	keys  []uint64
	local uint32
}

// paletteManager owns the per-pass signature->color tables. Its tables are
// destroyed (reset) at the start of every pass; they never outlive the
// refinement call that owns them.
type paletteManager struct {
	diag    map[signature][]bucketEntry // diagonal-cell signatures
	offDiag map[signature][]bucketEntry // off-diagonal-cell signatures

	nextDiag    uint32 // next unused local diagonal color
	nextOffDiag uint32 // next unused local off-diagonal color
}

// newPaletteManager allocates an empty manager with unsized signature
// bucket maps.
//
// Complexity: Time O(1), Space O(1) (maps grow lazily).
func newPaletteManager() *paletteManager {
	return &paletteManager{
		diag:    make(map[signature][]bucketEntry),
		offDiag: make(map[signature][]bucketEntry),
	}
}

// beginPass clears both signature maps and resets the local color counters.
// Implementation:
//   - Stage 1: replace both maps with fresh, empty ones (cheaper than
//     clearing large maps element-by-element across many passes, and the
//     old maps would otherwise have to stay alive for the GC to reclaim
//     them at the same point regardless).
//   - Stage 2: reset both counters to 0.
//
// Complexity: Time O(1), Space O(1).
func (pm *paletteManager) beginPass() {
	pm.diag = make(map[signature][]bucketEntry)
	pm.offDiag = make(map[signature][]bucketEntry)
	pm.nextDiag = 0
	pm.nextOffDiag = 0
}

// assign returns the local color index for (sig, keys) in the diagonal or
// off-diagonal range selected by isDiag, allocating a fresh index the
// first time this signature (verified by full key equality) is seen in
// the current pass.
// Implementation:
//   - Stage 1: select the target map (diag or offDiag) and its counter.
//   - Stage 2: look up the hash bucket; scan its entries for an exact
//     key-sequence match (resolves hash collisions authoritatively).
//   - Stage 3: on no match, allocate counter, append a new bucket entry.
//
// Determinism:
//   - First-seen-in-pass wins a fresh index; row-major traversal order in
//     refine.go makes this deterministic for a fixed input.
//
// Complexity:
//   - Amortized O(1) map lookup + O(b) collision scan where b is the
//     (expected small) bucket size for one hash value.
func (pm *paletteManager) assign(isDiag bool, sig signature, keys []uint64) uint32 {
	table := &pm.offDiag
	counter := &pm.nextOffDiag
	if isDiag {
		table = &pm.diag
		counter = &pm.nextDiag
	}

	bucket := (*table)[sig]
	for _, e := range bucket {
		if keysEqual(e.keys, keys) {
			return e.local
		}
	}

	local := *counter
	*counter++
	(*table)[sig] = append(bucket, bucketEntry{keys: keys, local: local})

	return local
}

// finalizePass reports the new diagonal count and total palette size,
// failing with ErrOverflow if the total would exceed MaxPaletteSize.
// Implementation:
//   - Stage 1: read the final counters as dDiag, dOffDiag.
//   - Stage 2: compute d = dDiag + dOffDiag; compare against MaxPaletteSize.
//
// Complexity: Time O(1), Space O(1).
func (pm *paletteManager) finalizePass() (dDiag, d uint64, err error) {
	dDiag = uint64(pm.nextDiag)
	d = dDiag + uint64(pm.nextOffDiag)
	if d > MaxPaletteSize {
		return 0, 0, ErrOverflow
	}

	return dDiag, d, nil
}

// MaxPaletteSize is the overflow ceiling spec.md §9 recommends: the
// largest palette size (d) the packed contribution-key arithmetic and the
// chosen index width are guaranteed to support.
const MaxPaletteSize = 65535
