// SPDX-License-Identifier: MIT

// Package converters adapts core.Graph host graphs into the wl.IndexMatrix
// coloring the refinement core consumes (spec.md §6's "graph wrapper
// interface"): diagonal cells receive vertex colors, off-diagonal cells
// receive edge colors, renumbered so the diagonal/off-diagonal disjointness
// invariant holds before Refine ever sees the matrix.
package converters

import (
	"fmt"
	"math"
	"sort"

	"github.com/kamalov-wl/wl"
	"github.com/kamalov-wl/wl/core"
	"github.com/kamalov-wl/wl/matrix"
	"github.com/kamalov-wl/wl/matrix/ops"
)

// Simple-graph palette layout (spec.md §6): off-diagonal {0,1} for
// non-edge/edge, a single reserved diagonal color 2.
const (
	simpleNoEdgeColor = 0
	simpleEdgeColor   = 1
	simpleDiagColor   = 2
	simplePaletteSize = 3
)

// FromSimpleGraph builds the wl.IndexMatrix for an unweighted simple graph,
// mapping g's 0/1 adjacency to off-diagonal colors {0,1} with a single
// diagonal color 2, exactly as spec.md §6 illustrates.
// MAIN DESCRIPTION:
//   - order fixes the row/column assignment; pass g.Vertices() for the
//     graph's stable lexicographic order, or a caller-chosen order to match
//     an external numbering.
//
// Implementation:
//   - Stage 1: allocate an n×n IndexMatrix.
//   - Stage 2: for each cell, diagonal gets simpleDiagColor; off-diagonal
//     gets simpleEdgeColor iff g.HasEdge(order[u], order[v]).
//
// Errors:
//   - wraps wl.ErrBadShape if order is empty; propagates Set errors, which
//     cannot occur for in-range (u,v) under this loop.
//
// Complexity:
//   - Time O(n^2) (one HasEdge lookup per off-diagonal cell), Space O(n^2).
func FromSimpleGraph(g *core.Graph, order []string) (a *wl.IndexMatrix, d uint32, err error) {
	n := len(order)
	a, err = wl.NewIndexMatrix(n)
	if err != nil {
		return nil, 0, fmt.Errorf("converters: FromSimpleGraph: %w", err)
	}

	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			var c uint32
			if u == v {
				c = simpleDiagColor
			} else if g.HasEdge(order[u], order[v]) {
				c = simpleEdgeColor
			} else {
				c = simpleNoEdgeColor
			}
			if serr := a.Set(u, v, c); serr != nil {
				return nil, 0, fmt.Errorf("converters: FromSimpleGraph: %w", serr)
			}
		}
	}

	return a, simplePaletteSize, nil
}

// Option configures FromWeightedGraph.
type Option func(*weightedOptions)

type weightedOptions struct {
	metricClosure bool
	directed      bool
}

// WithMetricClosure quantizes all-pairs shortest-path distances (computed
// via Floyd–Warshall over g's edge weights) instead of raw edge weights.
// Unreachable pairs keep their own dedicated color, distinct from every
// finite distance tier.
func WithMetricClosure() Option {
	return func(o *weightedOptions) { o.metricClosure = true }
}

// WithDirected treats g's edges as directed when building the underlying
// adjacency (mirrors matrix.WithDirected). Default: undirected.
func WithDirected() Option {
	return func(o *weightedOptions) { o.directed = true }
}

// FromWeightedGraph builds a wl.IndexMatrix whose off-diagonal colors are a
// quantization of g's edge weights into a contiguous palette (one color per
// distinct finite weight tier observed, plus one for "no edge"), and whose
// diagonal is a single reserved color. With WithMetricClosure, the
// quantized quantity is the all-pairs shortest-path distance instead of the
// raw edge weight. The row/column order is chosen internally (by
// matrix.BuildAdjacency, ultimately g.Vertices()'s lexicographic order) and
// returned so callers can map matrix indices back to vertex IDs.
// MAIN DESCRIPTION:
//   - Supplements spec.md §6's unweighted worked example with a weighted
//     variant, grounded on the teacher's matrix.BuildAdjacency /
//     ops.FloydWarshall adapters.
//
// Implementation:
//   - Stage 1: build a weighted adjacency Dense via matrix.BuildAdjacency;
//     recover its row order from the returned VertexIndex (authoritative —
//     a caller-supplied order could silently disagree with it).
//   - Stage 2: if WithMetricClosure, rewrite "no edge" cells to +Inf and
//     run ops.FloydWarshall in place.
//   - Stage 3: collect the distinct finite values present off-diagonal,
//     sort ascending, and assign each a contiguous off-diagonal color;
//     +Inf (unreachable/no-edge) gets its own trailing color.
//   - Stage 4: rewrite into a wl.IndexMatrix with a single diagonal color
//     after the off-diagonal range.
//
// Errors:
//   - propagates matrix/ops construction and IndexMatrix allocation errors.
//
// Complexity:
//   - Time O(n^2 log n^2) dominated by the distinct-value sort (O(n^3) if
//     WithMetricClosure triggers Floyd–Warshall), Space O(n^2).
func FromWeightedGraph(g *core.Graph, opts ...Option) (a *wl.IndexMatrix, d uint32, order []string, err error) {
	var o weightedOptions
	for _, set := range opts {
		set(&o)
	}

	mopts := matrix.NewMatrixOptions(matrixOptionFns(o)...)

	am, err := matrix.BuildAdjacency(g, mopts)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("converters: FromWeightedGraph: %w", err)
	}

	n := am.Mat.Rows()
	order = make([]string, n)
	for id, idx := range am.VertexIndex {
		order[idx] = id
	}

	if o.metricClosure {
		// BuildAdjacency's plain mode leaves "no edge" as 0, indistinguishable
		// from a genuine zero-weight edge; Floyd–Warshall needs +Inf there to
		// treat absent edges as unreachable.
		var u, v int
		var w float64
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				if u == v {
					continue
				}
				if w, err = am.Mat.At(u, v); err != nil {
					return nil, 0, nil, fmt.Errorf("converters: FromWeightedGraph: %w", err)
				}
				if w == 0 && !g.HasEdge(order[u], order[v]) {
					if err = am.Mat.Set(u, v, math.Inf(1)); err != nil {
						return nil, 0, nil, fmt.Errorf("converters: FromWeightedGraph: %w", err)
					}
				}
			}
		}

		if err = ops.FloydWarshall(am.Mat); err != nil {
			return nil, 0, nil, fmt.Errorf("converters: FromWeightedGraph: %w", err)
		}
	}

	// Stage 3: collect distinct off-diagonal values.
	seen := make(map[float64]struct{})
	var hasInf bool
	var u, v int
	var val float64
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if u == v {
				continue
			}
			val, err = am.Mat.At(u, v)
			if err != nil {
				return nil, 0, nil, fmt.Errorf("converters: FromWeightedGraph: %w", err)
			}
			if isInf(val) {
				hasInf = true
				continue
			}
			seen[val] = struct{}{}
		}
	}

	tiers := make([]float64, 0, len(seen))
	for val = range seen {
		tiers = append(tiers, val)
	}
	sort.Float64s(tiers)

	tierColor := make(map[float64]uint32, len(tiers))
	var i int
	for i, val = range tiers {
		tierColor[val] = uint32(i)
	}

	var infColor uint32
	offDiagCount := len(tiers)
	if hasInf {
		infColor = uint32(len(tiers))
		offDiagCount++
	}
	diagColor := uint32(offDiagCount)

	// Stage 4: rewrite into the index matrix.
	a, err = wl.NewIndexMatrix(n)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("converters: FromWeightedGraph: %w", err)
	}

	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if u == v {
				if serr := a.Set(u, v, diagColor); serr != nil {
					return nil, 0, nil, fmt.Errorf("converters: FromWeightedGraph: %w", serr)
				}
				continue
			}
			val, err = am.Mat.At(u, v)
			if err != nil {
				return nil, 0, nil, fmt.Errorf("converters: FromWeightedGraph: %w", err)
			}
			var c uint32
			if isInf(val) {
				c = infColor
			} else {
				c = tierColor[val]
			}
			if serr := a.Set(u, v, c); serr != nil {
				return nil, 0, nil, fmt.Errorf("converters: FromWeightedGraph: %w", serr)
			}
		}
	}

	return a, diagColor + 1, order, nil
}

// matrixOptionFns translates weightedOptions into the teacher matrix
// package's own functional options.
func matrixOptionFns(o weightedOptions) []matrix.Option {
	fns := []matrix.Option{matrix.WithWeighted()}
	if o.directed {
		fns = append(fns, matrix.WithDirected())
	} else {
		fns = append(fns, matrix.WithUndirected())
	}
	if o.metricClosure {
		fns = append(fns, matrix.WithAllowInfDistances())
	}

	return fns
}

// isInf reports whether val is +Inf, the sentinel that the metric-closure
// path writes for "no edge" and that ops.FloydWarshall leaves on unreachable
// pairs (matrix.BuildAdjacency itself writes 0 for "no edge").
func isInf(val float64) bool {
	return math.IsInf(val, 1)
}
