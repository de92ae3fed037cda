// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version, injected via ldflags
	commit  string // git commit SHA, injected via ldflags
	date    string // build timestamp, injected via ldflags
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute builds and runs the wlrefine root command against ctx.
func Execute(ctx context.Context) error {
	var verbose bool
	opts := refineOpts{}

	root := &cobra.Command{
		Use:          "wlrefine [file]",
		Short:        "Compute the coherent Weisfeiler-Leman refinement of a colored matrix",
		Long: `wlrefine reads an n x n colored matrix in the textual format described by
the package it implements, computes its coarsest coherent cellular
refinement, and writes the refined matrix back out in the same format.

With no file argument, the matrix is read from stdin. Output goes to
stdout unless --output is given.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			runCtx := withRunID(cmd.Context())
			runCtx = withLogger(runCtx, newLogger(os.Stderr, level))
			cmd.SetContext(runCtx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.input = args[0]
			}
			return runRefine(cmd.Context(), &opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("wlrefine %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	root.Flags().IntVar(&opts.maxPasses, "max-passes", 0, "override the pass bound (0: n^2-1 default)")
	root.Flags().BoolVar(&opts.confirmPass, "confirm-pass", false, "require one extra confirming pass before declaring convergence")
	root.Flags().StringVar(&opts.dot, "dot", "", "write a Graphviz debug rendering of the refined coloring to this path (.dot/.svg/.png)")
	root.Flags().StringVar(&opts.config, "config", "", "TOML config file with default flag values")

	return root.ExecuteContext(ctx)
}
