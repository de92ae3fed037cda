// SPDX-License-Identifier: MIT
// Package wl: Contribution Encoder & Sorter.
//
// Purpose:
//   - Pack each (c1,c2) contribution into a single integer key.
//   - Sort a cell's length-n key sequence into canonical order.
//   - Reduce the sorted sequence to a compact fingerprint, with a full
//     equality check resolving hash collisions (spec.md §4.2's "Hash"
//     strategy).

package wl

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// packKey encodes (c1,c2) as c1*d + c2, the bijection {0,...,d-1}² ->
// {0,...,d²-1} spec.md §3/§4.2 names. d is carried as uint64 so the
// product cannot overflow before the overflow guard in palette.go rejects
// a too-large d on the next pass.
//
// Complexity: Time O(1), Space O(1).
func packKey(c1, c2 uint32, d uint64) uint64 {
	return uint64(c1)*d + uint64(c2)
}

// sortKeys sorts ks ascending in place. Integer ascending sort is total;
// equal keys are retained (the multiset is the truth, spec.md §4.2).
//
// Complexity: Time O(n log n), Space O(1) beyond the sort's own overhead.
func sortKeys(ks []uint64) {
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })
}

// signature is a cell's canonical fingerprint: a 64-bit hash of its sorted
// contribution-key sequence. Two cells sharing a signature are verified by
// a full slice-equality check (paletteManager.assign) before being treated
// as identical — the hash alone is advisory, never authoritative.
type signature uint64

// fingerprint reduces a sorted key sequence to a signature via xxhash over
// its little-endian byte encoding.
// Implementation:
//   - Stage 1: take the caller-owned scratch buffer of at least 8*n bytes
//     (reused across cells by the driver to avoid per-cell allocation).
//   - Stage 2: encode each key little-endian into the buffer.
//   - Stage 3: hash the buffer with xxhash.Sum64.
//
// Determinism:
//   - xxhash.Sum64 is a pure function of its input bytes.
//
// Complexity:
//   - Time O(n), Space O(1) beyond the caller-supplied buffer.
func fingerprint(sorted []uint64, buf []byte) signature {
	var off int
	for _, k := range sorted {
		binary.LittleEndian.PutUint64(buf[off:off+8], k)
		off += 8
	}

	return signature(xxhash.Sum64(buf[:off]))
}

// keysEqual reports whether two sorted key sequences are identical,
// element by element. Used to resolve a signature collision authoritatively.
//
// Complexity: Time O(n), Space O(1).
func keysEqual(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
