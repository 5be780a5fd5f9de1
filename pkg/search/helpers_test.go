package search

import (
	"errors"
	"testing"
)

// line is a one-way chain 0 → 1 → 2 → ... with unit costs. expanded records
// every state whose successors were requested.
type line struct {
	length   int
	goal     int
	expanded []int
}

func (l *line) Actions(s int) []int {
	l.expanded = append(l.expanded, s)
	if s >= l.length {
		return nil
	}
	return []int{1}
}

func (l *line) Result(s, step int) (int, int) { return s + step, 1 }
func (l *line) Heuristic(int) int            { return 0 }
func (l *line) IsGoal(s int) bool            { return s == l.goal }

// weighted is a small adjacency-list graph over string states.
type weighted struct {
	edges map[string][]arc
	h     map[string]float64
	goals map[string]bool
}

type arc struct {
	to   string
	cost float64
}

func (w *weighted) Actions(s string) []string {
	var out []string
	for _, a := range w.edges[s] {
		out = append(out, a.to)
	}
	return out
}

func (w *weighted) Result(s, to string) (string, float64) {
	for _, a := range w.edges[s] {
		if a.to == to {
			return to, a.cost
		}
	}
	panic("no arc " + s + " -> " + to)
}

func (w *weighted) Heuristic(s string) float64 { return w.h[s] }
func (w *weighted) IsGoal(s string) bool       { return w.goals[s] }

// mustContract runs fn and returns the ContractError it panics with.
func mustContract(t testing.TB, fn func()) *ContractError {
	t.Helper()
	var got *ContractError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err, ok := r.(error)
			if !ok || !errors.As(err, &got) {
				panic(r)
			}
		}()
		fn()
	}()
	if got == nil {
		t.Fatalf("expected a contract violation panic")
	}
	return got
}
