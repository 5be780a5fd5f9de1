package search

// Problem is the contract a problem formulation implements to be searched.
//
// The engine never inspects states, actions or costs beyond what this
// interface requires: states are compared and hashed as map keys, costs are
// ordered and added.
type Problem[S comparable, A any, C Cost] interface {
	// Actions returns the actions executable from state. The slice may be
	// empty and its order is the order successors are generated in.
	Actions(state S) []A

	// Result applies action to state and returns the successor state along
	// with the incremental (non-cumulative) cost of the step.
	Result(state S, action A) (S, C)

	// Heuristic estimates the remaining cost from state to a goal. The
	// engine performs no admissibility check.
	Heuristic(state S) C

	// IsGoal reports whether state satisfies the goal test.
	IsGoal(state S) bool
}

// Funcs adapts plain functions to the [Problem] interface.
// HeuristicFunc may be nil, in which case the heuristic is always zero.
type Funcs[S comparable, A any, C Cost] struct {
	ActionsFunc   func(S) []A
	ResultFunc    func(S, A) (S, C)
	HeuristicFunc func(S) C
	GoalFunc      func(S) bool
}

// Actions calls ActionsFunc.
func (f Funcs[S, A, C]) Actions(state S) []A { return f.ActionsFunc(state) }

// Result calls ResultFunc.
func (f Funcs[S, A, C]) Result(state S, action A) (S, C) { return f.ResultFunc(state, action) }

// Heuristic calls HeuristicFunc, or returns zero when it is nil.
func (f Funcs[S, A, C]) Heuristic(state S) C {
	if f.HeuristicFunc == nil {
		var zero C
		return zero
	}
	return f.HeuristicFunc(state)
}

// IsGoal calls GoalFunc.
func (f Funcs[S, A, C]) IsGoal(state S) bool { return f.GoalFunc(state) }

var _ Problem[int, int, int] = Funcs[int, int, int]{}
