// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/kamalov-wl/wl"
)

// toDOT renders a refined matrix as a Graphviz document: one node per
// vertex, labelled with its diagonal (vertex) color, and one edge per
// unordered pair labelled with its off-diagonal color(s). Pairs whose
// forward and reverse colors agree get a single label; asymmetric pairs
// show both ("c(u,v)/c(v,u)"), since Refine does not require symmetry.
func toDOT(res wl.Result) (string, error) {
	n := res.Matrix.Order()

	var buf bytes.Buffer
	buf.WriteString("graph wl {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=10];\n\n")

	for v := 0; v < n; v++ {
		c, err := res.Matrix.At(v, v)
		if err != nil {
			return "", fmt.Errorf("cli: toDOT: %w", err)
		}
		fmt.Fprintf(&buf, "  %d [label=%q, fillcolor=%q];\n", v, fmt.Sprintf("%d:c%d", v, c), paletteFill(c))
	}

	buf.WriteString("\n")
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			fwd, err := res.Matrix.At(u, v)
			if err != nil {
				return "", fmt.Errorf("cli: toDOT: %w", err)
			}
			rev, err := res.Matrix.At(v, u)
			if err != nil {
				return "", fmt.Errorf("cli: toDOT: %w", err)
			}

			label := fmt.Sprintf("%d", fwd)
			if fwd != rev {
				label = fmt.Sprintf("%d/%d", fwd, rev)
			}
			fmt.Fprintf(&buf, "  %d -- %d [label=%q];\n", u, v, label)
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// paletteFill derives a stable, cheap-to-compute fill color name for a
// color index so repeated runs over the same scenario render identically.
func paletteFill(c uint32) string {
	names := []string{"lightblue", "lightpink", "lightgreen", "khaki", "plum", "lightcyan", "wheat", "thistle"}
	return names[int(c)%len(names)]
}

// renderDot writes res's DOT rendering to path. The output format is
// chosen from path's extension: ".dot" writes the raw document, anything
// else is rendered through Graphviz (".svg"/".png", defaulting to SVG for
// an unrecognized extension).
func renderDot(ctx context.Context, res wl.Result, path string) error {
	dot, err := toDOT(res)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".dot") {
		return os.WriteFile(path, []byte(dot), 0o644)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("cli: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("cli: parse DOT: %w", err)
	}
	defer g.Close()

	format := graphviz.SVG
	if strings.EqualFold(filepath.Ext(path), ".png") {
		format = graphviz.PNG
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return fmt.Errorf("cli: render: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cli: writing %s: %w", path, err)
	}

	return nil
}
