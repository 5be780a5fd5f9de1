package solve

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wayfinder/pkg/cache"
	"github.com/matzehuels/wayfinder/pkg/errors"
	"github.com/matzehuels/wayfinder/pkg/search"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultStrategy is used when Options.Strategy is empty.
	DefaultStrategy = "astar"

	// DefaultCeiling bounds iterative deepening when Options.Ceiling is zero.
	DefaultCeiling = 64
)

// =============================================================================
// Options - Solve Configuration
// =============================================================================

// Options configures one solve. It supports JSON for API requests.
type Options struct {
	Strategy string `json:"strategy,omitempty"`

	// MaxDepth bounds the search depth; zero means unbounded.
	MaxDepth int `json:"max_depth,omitempty"`

	// Iterative runs iterative deepening up to Ceiling. It cannot be
	// combined with MaxDepth.
	Iterative bool `json:"iterative,omitempty"`
	Ceiling   int  `json:"ceiling,omitempty"`

	// Tree disables the explored set and duplicate detection.
	Tree bool `json:"tree,omitempty"`

	// Arena allocates nodes from a slab instead of the heap.
	Arena bool `json:"arena,omitempty"`

	// MaxIterations caps dequeues per episode; zero means no cap.
	MaxIterations int `json:"max_iterations,omitempty"`

	// Timeout bounds the wall-clock time of the search; zero means none.
	Timeout time.Duration `json:"timeout,omitempty"`

	// Refresh skips the cache lookup and overwrites the cached report.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	strategy  search.Strategy
	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults. The
// strategy name is normalized, so "dijkstra" becomes "ucs". It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	s, err := search.ParseStrategy(o.Strategy)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStrategy, err, "strategy")
	}
	o.strategy = s
	o.Strategy = s.String()

	if err := errors.ValidateDepth(o.MaxDepth); err != nil {
		return fmt.Errorf("max_depth: %w", err)
	}
	if o.Iterative {
		if o.MaxDepth > 0 {
			return errors.New(errors.ErrCodeInvalidInput, "max_depth and iterative are mutually exclusive")
		}
		if o.Ceiling == 0 {
			o.Ceiling = DefaultCeiling
		}
	}
	if err := errors.ValidateDepth(o.Ceiling); err != nil {
		return fmt.Errorf("ceiling: %w", err)
	}
	if o.MaxIterations < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_iterations cannot be negative")
	}
	if o.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout cannot be negative")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Mode returns the search mode implied by Tree.
func (o *Options) Mode() search.Mode {
	if o.Tree {
		return search.TreeSearch
	}
	return search.GraphSearch
}

// ReportKeyOpts returns the cache key options for this solve. Timeout and
// Refresh do not change a completed report and are left out.
func (o *Options) ReportKeyOpts() cache.ReportKeyOpts {
	return cache.ReportKeyOpts{
		Strategy:      o.Strategy,
		Mode:          o.Mode().String(),
		MaxDepth:      o.MaxDepth,
		Iterative:     o.Iterative,
		Ceiling:       o.Ceiling,
		MaxIterations: o.MaxIterations,
	}
}

func (o *Options) searchOptions(ctx context.Context) []search.Option {
	opts := []search.Option{
		search.WithMode(o.Mode()),
		search.WithMaxIterations(o.MaxIterations),
		search.WithContext(ctx),
	}
	if o.Logger.GetLevel() <= log.DebugLevel {
		opts = append(opts, search.WithLogger(o.Logger))
	}
	return opts
}
