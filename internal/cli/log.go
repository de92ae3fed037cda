// SPDX-License-Identifier: MIT

// Package cli implements the wlrefine command-line interface: reading the
// textual matrix format (wlio) from stdin or a file, invoking wl.Refine,
// and writing the refined matrix back out in the same format.
//
// # Logging
//
// Diagnostics (pass count, palette growth, elapsed time) go to stderr via
// github.com/charmbracelet/log. The core wl/wlio/converters packages never
// log anything themselves; this package is the sole I/O and logging
// boundary, per the run's "no process-wide state, no global mutation"
// constraint.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger creates a logger writing to w at the given level, timestamped
// "HH:MM:SS.hh" (hundredths of a second).
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks an operation's start time and logs its completion with
// elapsed duration. Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time since the progress was created,
// rounded to the millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey namespaces context values stored by this package.
type ctxKey int

const (
	loggerKey ctxKey = iota
	runIDKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or log.Default() if none
// was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// withRunID attaches a fresh run-correlation UUID to ctx.
func withRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, runIDKey, uuid.New().String())
}

// runIDFromContext returns the run's correlation UUID, or "" if none was
// attached (e.g. in tests that construct a bare context).
func runIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}
