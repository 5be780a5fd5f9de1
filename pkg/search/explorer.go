package search

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wayfinder/pkg/observability"
)

// noLimit marks an unbounded episode.
const noLimit = -1

// Explorer runs best-first search episodes over one problem with one
// strategy. It owns its frontier, explored set and optional arena and
// resets them at the start of every episode.
type Explorer[S comparable, A any, C Cost] struct {
	problem  Problem[S, A, C]
	strategy Strategy
	opts     Options

	frontier *Frontier[S, A, C]
	explored map[S]struct{}
	arena    *Arena[S, A, C]

	debug bool
}

// New returns an explorer whose nodes are garbage-collected heap objects.
func New[S comparable, A any, C Cost](problem Problem[S, A, C], strategy Strategy, opts ...Option) *Explorer[S, A, C] {
	return newExplorer(problem, strategy, nil, opts)
}

// NewWithArena returns an explorer whose nodes are allocated from arena.
// The arena is reset at the start of every episode, so nodes from an
// earlier episode must not be retained.
func NewWithArena[S comparable, A any, C Cost](problem Problem[S, A, C], strategy Strategy, arena *Arena[S, A, C], opts ...Option) *Explorer[S, A, C] {
	if arena == nil {
		arena = NewArena[S, A, C](0)
	}
	return newExplorer(problem, strategy, arena, opts)
}

func newExplorer[S comparable, A any, C Cost](problem Problem[S, A, C], strategy Strategy, arena *Arena[S, A, C], opts []Option) *Explorer[S, A, C] {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Context == nil {
		o.Context = context.Background()
	}
	e := &Explorer[S, A, C]{
		problem:  problem,
		strategy: strategy,
		opts:     o,
		frontier: NewFrontier(NewBackend[S, A, C](strategy)),
		arena:    arena,
		debug:    o.Logger != nil && o.Logger.GetLevel() <= log.DebugLevel,
	}
	if o.Mode == GraphSearch {
		e.explored = make(map[S]struct{})
	}
	return e
}

// Strategy returns the explorer's strategy.
func (e *Explorer[S, A, C]) Strategy() Strategy { return e.strategy }

// Mode returns the explorer's mode.
func (e *Explorer[S, A, C]) Mode() Mode { return e.opts.Mode }

// Search runs one unbounded episode from initial.
func (e *Explorer[S, A, C]) Search(initial S) Result[S, A, C] {
	start := time.Now()
	ep := e.episode(initial, noLimit)
	return ep.result(time.Since(start))
}

// SearchWithMaxDepth runs one episode in which nodes at depth maxDepth are
// goal-tested but never expanded. A negative maxDepth means unbounded.
func (e *Explorer[S, A, C]) SearchWithMaxDepth(initial S, maxDepth int) Result[S, A, C] {
	if maxDepth < 0 {
		maxDepth = noLimit
	}
	start := time.Now()
	ep := e.episode(initial, maxDepth)
	return ep.result(time.Since(start))
}

// IterativeSearch runs depth-bounded episodes with limits 1, 2, ..., ceiling
// and returns the first success.
//
// Elapsed covers every attempt, Generated is summed across attempts and
// MaxFrontier is the largest seen in any attempt. Iterations and DepthLimit
// describe the final attempt only. A ceiling below 1 tries nothing and
// reports not found.
func (e *Explorer[S, A, C]) IterativeSearch(initial S, ceiling int) Result[S, A, C] {
	start := time.Now()
	var (
		last        outcome[S, A, C]
		generated   int
		maxFrontier int
	)
	for limit := 1; limit <= ceiling; limit++ {
		last = e.episode(initial, limit)
		generated += last.generated
		maxFrontier = max(maxFrontier, last.maxFrontier)
		if last.found || (last.truncated && e.opts.Context.Err() != nil) {
			break
		}
	}
	res := last.result(time.Since(start))
	res.Generated = generated
	res.MaxFrontier = maxFrontier
	return res
}

// outcome captures one episode. The goal node is turned into plain values
// before the next episode resets the arena.
type outcome[S comparable, A any, C Cost] struct {
	found       bool
	truncated   bool
	state       S
	plan        []A
	cost        C
	iterations  int
	maxFrontier int
	generated   int
	limit       int
}

func (o outcome[S, A, C]) result(elapsed time.Duration) Result[S, A, C] {
	return Result[S, A, C]{
		Found:       o.found,
		State:       o.state,
		Plan:        o.plan,
		Cost:        o.cost,
		Elapsed:     elapsed,
		Iterations:  o.iterations,
		MaxFrontier: o.maxFrontier,
		Generated:   o.generated,
		DepthLimit:  o.limit,
		Truncated:   o.truncated,
	}
}

func (e *Explorer[S, A, C]) reset() {
	e.frontier.Reset()
	if e.explored != nil {
		clear(e.explored)
	}
	if e.arena != nil {
		e.arena.Reset()
	}
}

func (e *Explorer[S, A, C]) node(parent *Node[S, A, C], state S, action *A, cost C) *Node[S, A, C] {
	if e.arena != nil {
		return e.arena.New(parent, e.problem, state, action, cost)
	}
	return NewNode(parent, e.problem, state, action, cost)
}

func (e *Explorer[S, A, C]) push(n *Node[S, A, C]) {
	if e.explored == nil {
		e.frontier.Enqueue(n)
		return
	}
	e.frontier.EnqueueOrReplace(n)
}

func (e *Explorer[S, A, C]) frontierSize() int {
	if e.explored == nil {
		return e.frontier.BackendLen()
	}
	return e.frontier.Len()
}

// episode is the single search loop behind every public entry point.
//
// The goal test happens when a node is dequeued, so the first goal popped
// from a cost-ordered frontier is cheapest under an admissible heuristic.
// In graph mode a state is marked explored as soon as it is dequeued, so a
// self-loop cannot bring it back. A successor whose state is already
// explored is dropped before a node is built; a state still waiting in the
// frontier is offered to EnqueueOrReplace, which keeps the cheaper of the
// two.
func (e *Explorer[S, A, C]) episode(initial S, limit int) outcome[S, A, C] {
	ctx := e.opts.Context
	strategy, mode := e.strategy.String(), e.opts.Mode.String()
	observability.Search().OnEpisodeStart(ctx, strategy, mode, limit)
	start := time.Now()

	e.reset()
	out := outcome[S, A, C]{limit: limit}
	var zero C
	e.push(e.node(nil, initial, nil, zero))
	out.generated++
	out.maxFrontier = e.frontierSize()

	for {
		if e.opts.MaxIterations > 0 && out.iterations >= e.opts.MaxIterations {
			out.truncated = true
			break
		}
		if out.iterations%ctxPollEvery == 0 && ctx.Err() != nil {
			out.truncated = true
			break
		}
		n, ok := e.frontier.Dequeue()
		if !ok {
			break
		}
		out.iterations++
		if e.debug {
			e.opts.Logger.Debug("dequeue",
				"iter", out.iterations, "depth", n.depth,
				"g", n.g, "h", n.h, "frontier", e.frontierSize())
		}

		if e.problem.IsGoal(n.state) {
			out.found = true
			out.state = n.state
			out.plan = n.Plan()
			out.cost = n.g
			break
		}

		if e.explored != nil {
			e.explored[n.state] = struct{}{}
		}
		if limit == noLimit || n.depth < limit {
			for _, a := range e.problem.Actions(n.state) {
				next, cost := e.problem.Result(n.state, a)
				if e.explored != nil {
					if _, seen := e.explored[next]; seen {
						continue
					}
				}
				e.push(e.node(n, next, &a, cost))
				out.generated++
			}
		}
		out.maxFrontier = max(out.maxFrontier, e.frontierSize())
	}

	if e.debug {
		e.opts.Logger.Debug("episode done",
			"strategy", strategy, "mode", mode, "limit", limit,
			"found", out.found, "iterations", out.iterations, "generated", out.generated)
	}
	observability.Search().OnEpisodeComplete(ctx, strategy, mode, observability.EpisodeStats{
		Found:       out.found,
		Truncated:   out.truncated,
		Iterations:  out.iterations,
		MaxFrontier: out.maxFrontier,
		Generated:   out.generated,
		DepthLimit:  limit,
		Duration:    time.Since(start),
	})
	return out
}
