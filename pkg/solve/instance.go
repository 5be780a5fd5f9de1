package solve

import (
	"context"
	"fmt"

	"github.com/matzehuels/wayfinder/pkg/definition"
	"github.com/matzehuels/wayfinder/pkg/errors"
	"github.com/matzehuels/wayfinder/pkg/problems/folding"
	"github.com/matzehuels/wayfinder/pkg/problems/puzzle"
	"github.com/matzehuels/wayfinder/pkg/problems/queens"
	"github.com/matzehuels/wayfinder/pkg/problems/vacuum"
	"github.com/matzehuels/wayfinder/pkg/search"
)

// runnable hides the type parameters of an instance behind a Report.
type runnable interface {
	run(ctx context.Context, opts *Options) Report
}

// instance pairs a problem with its initial state. draw, when set, renders
// the goal state for Report.Final.
type instance[S comparable, A any, C search.Cost] struct {
	problem search.Problem[S, A, C]
	initial S
	draw    func(S) string
}

func newInstance(def *definition.Definition) (runnable, error) {
	switch def.Kind {
	case definition.KindGraph:
		g, start, err := def.Graph.Build()
		if err != nil {
			return nil, err
		}
		return instance[string, string, float64]{problem: g, initial: start}, nil
	case definition.KindVacuum:
		w, start, err := def.Vacuum.Build()
		if err != nil {
			return nil, err
		}
		return instance[vacuum.State, vacuum.Action, int]{problem: w, initial: start, draw: w.Render}, nil
	case definition.KindPuzzle:
		p, start, err := def.Puzzle.Build()
		if err != nil {
			return nil, err
		}
		return instance[puzzle.Board, puzzle.Move, int]{problem: p, initial: start, draw: p.Format}, nil
	case definition.KindQueens:
		b, start, err := def.Queens.Build()
		if err != nil {
			return nil, err
		}
		return instance[queens.Placement, int, int]{problem: b, initial: start, draw: b.Format}, nil
	case definition.KindFolding:
		p, start, err := def.Folding.Build()
		if err != nil {
			return nil, err
		}
		return instance[folding.Fold, folding.Dir, int]{problem: p, initial: start, draw: p.Format}, nil
	}
	return nil, errors.Wrap(errors.ErrCodeUnsupportedKind, definition.ErrUnknownKind, "%q", def.Kind)
}

func (in instance[S, A, C]) run(ctx context.Context, opts *Options) Report {
	sopts := opts.searchOptions(ctx)
	var e *search.Explorer[S, A, C]
	if opts.Arena {
		e = search.NewWithArena[S, A, C](in.problem, opts.strategy, nil, sopts...)
	} else {
		e = search.New(in.problem, opts.strategy, sopts...)
	}

	var res search.Result[S, A, C]
	switch {
	case opts.Iterative:
		res = e.IterativeSearch(in.initial, opts.Ceiling)
	case opts.MaxDepth > 0:
		res = e.SearchWithMaxDepth(in.initial, opts.MaxDepth)
	default:
		res = e.Search(in.initial)
	}

	rep := Report{
		Strategy:    opts.Strategy,
		Mode:        opts.Mode().String(),
		Found:       res.Found,
		Cost:        float64(res.Cost),
		Iterations:  res.Iterations,
		MaxFrontier: res.MaxFrontier,
		Generated:   res.Generated,
		DepthLimit:  res.DepthLimit,
		Truncated:   res.Truncated,
		Elapsed:     res.Elapsed,
	}
	if !res.Found {
		return rep
	}

	// Replay the plan to list the states it passes through.
	rep.Plan = make([]string, len(res.Plan))
	rep.States = make([]string, 0, len(res.Plan)+1)
	state := in.initial
	rep.States = append(rep.States, fmt.Sprint(state))
	for i, a := range res.Plan {
		rep.Plan[i] = fmt.Sprint(a)
		state, _ = in.problem.Result(state, a)
		rep.States = append(rep.States, fmt.Sprint(state))
	}
	if in.draw != nil {
		rep.Final = in.draw(res.State)
	}
	return rep
}
