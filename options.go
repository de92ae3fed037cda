// SPDX-License-Identifier: MIT

// Package wl: functional configuration for Refine.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public API consumes ...Option.
package wl

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxPassesUnset, when left zero, tells gatherOptions to derive
	// the pass bound from the matrix order (n²-1) rather than a fixed cap.
	DefaultMaxPassesUnset = 0

	// DefaultConfirmPass controls whether the driver runs one additional
	// confirming pass after d' == d before declaring convergence.
	DefaultConfirmPass = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxPassesInvalid = "wl: WithMaxPasses: passes must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxPasses   int  // 0 means "derive from n²-1"; DefaultMaxPassesUnset
	confirmPass bool // DefaultConfirmPass
}

// WithMaxPasses overrides the fixed-point loop's termination bound.
// Implementation:
//   - Stage 1: validate passes > 0.
//   - Stage 2: return a setter that writes passes into Options.
//
// Behavior highlights:
//   - The bound is still clamped to the algorithm's n²-1 guarantee by
//     finalizeOptions; a caller cannot raise it past that ceiling, only
//     lower it (e.g., for a deliberately bounded exploratory run).
//
// Errors:
//   - Panics with a stable message when passes <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMaxPasses(passes int) Option {
	if passes <= 0 {
		panic(panicMaxPassesInvalid)
	}

	return func(o *Options) { o.maxPasses = passes }
}

// WithConfirmPass requests one additional confirming pass after the driver
// observes d' == d, before declaring convergence (spec.md §9: "a defensive
// implementation may additionally run one extra confirming pass").
//
// Complexity: Time O(1), Space O(1).
func WithConfirmPass() Option {
	return func(o *Options) { o.confirmPass = true }
}

// ---------- Option Resolution ----------

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants. Canonical internal entry point for Refine.
// Implementation:
//   - Stage 1: start from defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: derive the effective pass bound against n²-1.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(n int, user ...Option) Options {
	o := Options{
		maxPasses:   DefaultMaxPassesUnset,
		confirmPass: DefaultConfirmPass,
	}
	for _, set := range user {
		set(&o)
	}

	finalizeOptions(&o, n)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
// Implementation:
//   - Stage 1: compute the algorithm's guaranteed bound n²-1, floored at 1
//     (n=1 still needs one pass to observe convergence).
//   - Stage 2: if maxPasses is unset or exceeds the guaranteed bound, clamp
//     it to the guaranteed bound.
//
// Complexity:
//   - Time O(1), Space O(1).
func finalizeOptions(o *Options, n int) {
	bound := n*n - 1
	if bound < 1 {
		bound = 1
	}
	if o.maxPasses <= 0 || o.maxPasses > bound {
		o.maxPasses = bound
	}
}
