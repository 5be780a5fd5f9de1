package search

import (
	"context"

	"github.com/charmbracelet/log"
)

// Options configures an [Explorer].
type Options struct {
	// Logger receives per-iteration trace output at debug level. Nil
	// disables tracing.
	Logger *log.Logger

	// Mode selects graph search (default) or tree search.
	Mode Mode

	// MaxIterations caps the dequeues of one episode. Zero means no cap.
	// An episode that hits the cap reports Truncated.
	MaxIterations int

	// Context is polled between iterations; once it is done the episode
	// stops and reports Truncated. It is also passed to observability
	// hooks. Nil means context.Background().
	Context context.Context
}

// Option mutates Options.
type Option func(*Options)

// WithLogger enables debug tracing through l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMode selects graph or tree search.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithMaxIterations caps the dequeues per episode.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIterations = n
		}
	}
}

// WithContext binds ctx for cancellation and hook propagation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Context = ctx }
}

// ctxPollEvery is how many iterations pass between context checks.
const ctxPollEvery = 256
