// Package wl computes the Weisfeiler–Leman coherent refinement of a
// coloring of Ω×Ω for a finite set Ω = {0,...,n-1}.
//
// The input is an n×n matrix of color indices in {0,...,d-1}; diagonal
// cells (u,u) and off-diagonal cells (u,v), u≠v, occupy disjoint color
// ranges. Refine iterates a fixed-point loop — for every cell, gather the
// multiset of (A[u,w], A[w,v]) pairs over w, canonicalise it into a
// signature, and assign the signature a fresh color — until no cell's
// color class splits further. The result is the coarsest coloring that is
// cellular: for every triple of colors (i,j,k), the count of w completing
// an i-j path between cells of class k is constant across k.
//
// Under the hood, four components cooperate in a fixed dependency order:
//
//	builder.go    — per-cell contribution enumeration
//	signature.go  — packing, sorting, fingerprinting of contributions
//	palette.go    — signature → color assignment, overflow detection
//	refine.go     — the outer fixed-point loop and public entry point
//
// Sibling packages adapt this core to the outside world:
//
//	core/       — in-memory graph primitive (vertices, edges, adjacency)
//	matrix/     — dense float64 matrices, adjacency/incidence builders, APSP
//	converters/ — core.Graph → IndexMatrix adapters (the graph wrapper contract)
//	wlio/       — the textual matrix format reader/writer
//	cmd/wlrefine — a standalone CLI front-end
//
// The kernel itself is single-threaded and synchronous: Refine either runs
// to completion or returns an error; there is no cancellation protocol and
// no process-wide state.
package wl
