// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kamalov-wl/wl"
	"github.com/kamalov-wl/wl/wlio"
)

// refineOpts holds wlrefine's command-line flags, merged with any loaded
// fileConfig (flags win) before runRefine executes.
type refineOpts struct {
	input       string // input file path, "" for stdin
	output      string // output file path, "" for stdout
	maxPasses   int    // 0: use wl.Refine's default bound (n^2 - 1)
	confirmPass bool
	dot         string // optional Graphviz debug dump path, "" to skip
	config      string // optional TOML config file path
}

// mergeConfig overlays a loaded fileConfig under opts: any flag left at
// its zero value is filled in from cfg, so explicit flags always win.
func (o *refineOpts) mergeConfig(cfg fileConfig) {
	if o.maxPasses == 0 {
		o.maxPasses = cfg.MaxPasses
	}
	if !o.confirmPass {
		o.confirmPass = cfg.ConfirmPass
	}
	if o.dot == "" {
		o.dot = cfg.Dot
	}
}

// runRefine reads a matrix, refines it, writes the result, and (if
// requested) dumps a Graphviz rendering of the refined coloring.
func runRefine(ctx context.Context, opts *refineOpts) error {
	logger := loggerFromContext(ctx)
	runID := runIDFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	opts.mergeConfig(cfg)

	in, closeIn, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer closeIn()

	a, d, err := wlio.Read(in)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}
	logger.Debugf("run %s: read %d-vertex matrix, d=%d", runID, a.Order(), d)

	var wopts []wl.Option
	if opts.maxPasses > 0 {
		wopts = append(wopts, wl.WithMaxPasses(opts.maxPasses))
	}
	if opts.confirmPass {
		wopts = append(wopts, wl.WithConfirmPass())
	}

	prog := newProgress(logger)
	res, err := wl.Refine(a, d, wopts...)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}
	prog.done(fmt.Sprintf("run %s: refined to d=%d (d_diag=%d) in %d passes", runID, res.D, res.DDiag, res.Passes))

	out, closeOut, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := wlio.Write(out, res.Matrix, uint32(res.D)); err != nil {
		return fmt.Errorf("cli: %w", err)
	}

	if opts.dot != "" {
		if err := renderDot(ctx, res, opts.dot); err != nil {
			return err
		}
		logger.Debugf("run %s: wrote debug rendering to %s", runID, opts.dot)
	}

	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: opening %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: creating %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
