// Package cli implements the wayfinder command-line interface.
//
// This package provides commands for solving problem definitions with any
// search strategy, comparing strategies side by side, rendering graph
// problems, serving the HTTP API and managing the report cache and run
// history. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: Search a problem and print the plan
//   - compare: Run every strategy and print a comparison table
//   - render: Draw a graph problem with its solution path
//   - serve: Run the HTTP API
//   - cache, history: Manage cached reports and recorded runs
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces every node the search engine dequeues. Loggers are passed through
// context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/wayfinder/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wayfinder/pkg/solve"
)

// newLogger creates a logger writing to w at level, with timestamps as
// "HH:MM:SS.ms" (e.g. "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command and logs its outcome once it finishes.
type progress struct {
	logger *log.Logger
	msg    string
	start  time.Time
}

// newProgress starts timing a command whose outcome will be logged as msg.
func newProgress(l *log.Logger, msg string) *progress {
	return &progress{logger: l, msg: msg, start: time.Now()}
}

// done logs msg at info level with keyvals and the elapsed wall time,
// rounded to the millisecond.
func (p *progress) done(keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(p.msg, keyvals...)
}

// reportFields lists the key/value pairs logged for a finished search.
func reportFields(rep *solve.Report) []any {
	fields := []any{"problem", rep.Problem, "strategy", rep.Strategy, "found", rep.Found}
	if rep.Found {
		fields = append(fields, "cost", formatCost(rep.Cost), "steps", len(rep.Plan))
	}
	fields = append(fields, "iterations", rep.Iterations)
	if rep.Truncated {
		fields = append(fields, "truncated", true)
	}
	if rep.Cached {
		fields = append(fields, "cached", true)
	}
	return fields
}

type loggerKey struct{}

// withLogger attaches l to ctx for loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() for contexts that never passed through the root command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
