package search

import (
	"fmt"
	"strings"
	"time"
)

// Result is the outcome of a search call.
//
// When Found is false, State, Plan and Cost are zero values and only the
// statistics are meaningful.
type Result[S comparable, A any, C Cost] struct {
	Found bool
	State S   // goal state reached
	Plan  []A // actions from the initial state to State
	Cost  C   // accumulated cost of Plan

	Elapsed     time.Duration
	Iterations  int // dequeues in the final episode
	MaxFrontier int // peak frontier size
	Generated   int // nodes constructed, summed over episodes
	DepthLimit  int // limit of the final episode, -1 when unbounded
	Truncated   bool
}

func (r Result[S, A, C]) String() string {
	var b strings.Builder
	if r.Found {
		fmt.Fprintf(&b, "state: %v\n", r.State)
		fmt.Fprintf(&b, "actions: %v\n", r.Plan)
		fmt.Fprintf(&b, "cost: %v\n", r.Cost)
	} else if r.Truncated {
		b.WriteString("search truncated before a solution was found\n")
	} else {
		b.WriteString("no solution found\n")
	}
	fmt.Fprintf(&b, "time: %v\n", r.Elapsed)
	fmt.Fprintf(&b, "iterations: %d\n", r.Iterations)
	fmt.Fprintf(&b, "max frontier size: %d", r.MaxFrontier)
	return b.String()
}
