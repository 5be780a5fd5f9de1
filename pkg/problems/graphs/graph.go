// Package graphs implements route finding on a weighted directed graph.
//
// States are node names and an action is the name of the node to move to.
// The heuristic is a per-node lookup table; nodes missing from the table
// estimate zero.
package graphs

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/matzehuels/wayfinder/pkg/search"
)

var (
	// ErrUnknownNode is returned when an edge, goal or start names a node
	// that was never declared.
	ErrUnknownNode = errors.New("graphs: unknown node")

	// ErrNegativeCost is returned for edges with a negative or NaN cost.
	ErrNegativeCost = errors.New("graphs: negative edge cost")

	// ErrDuplicateEdge is returned when a second arc joins the same ordered
	// pair of nodes. Actions name the target node, so parallel arcs could
	// not be told apart.
	ErrDuplicateEdge = errors.New("graphs: duplicate edge")
)

// Edge is a weighted arc.
type Edge struct {
	From string
	To   string
	Cost float64
}

// Graph is a weighted directed graph with a goal set and a heuristic table.
// It implements search.Problem[string, string, float64].
//
// Successors are generated in edge insertion order.
type Graph struct {
	nodes     []string
	declared  map[string]bool
	out       map[string][]Edge
	heuristic map[string]float64
	goals     map[string]bool
}

var _ search.Problem[string, string, float64] = (*Graph)(nil)

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		declared:  make(map[string]bool),
		out:       make(map[string][]Edge),
		heuristic: make(map[string]float64),
		goals:     make(map[string]bool),
	}
}

// AddNode declares name. Redeclaring is a no-op.
func (g *Graph) AddNode(name string) {
	if !g.declared[name] {
		g.declared[name] = true
		g.nodes = append(g.nodes, name)
	}
}

// AddEdge declares both endpoints and adds the arc from → to. At most one
// arc may join a given ordered pair.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("%w: %s -> %s (%v)", ErrNegativeCost, from, to, cost)
	}
	if _, ok := g.arc(from, to); ok {
		return fmt.Errorf("%w: %s -> %s", ErrDuplicateEdge, from, to)
	}
	g.AddNode(from)
	g.AddNode(to)
	g.out[from] = append(g.out[from], Edge{From: from, To: to, Cost: cost})
	return nil
}

// SetHeuristic records the estimate for a declared node.
func (g *Graph) SetHeuristic(node string, h float64) error {
	if !g.declared[node] {
		return fmt.Errorf("%w: heuristic for %q", ErrUnknownNode, node)
	}
	g.heuristic[node] = h
	return nil
}

// AddGoal marks a declared node as a goal.
func (g *Graph) AddGoal(node string) error {
	if !g.declared[node] {
		return fmt.Errorf("%w: goal %q", ErrUnknownNode, node)
	}
	g.goals[node] = true
	return nil
}

// Has reports whether node is declared.
func (g *Graph) Has(node string) bool { return g.declared[node] }

// Nodes returns every node in declaration order.
func (g *Graph) Nodes() []string { return slices.Clone(g.nodes) }

// Edges returns every arc, grouped by source in declaration order.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, n := range g.nodes {
		edges = append(edges, g.out[n]...)
	}
	return edges
}

// Goals returns the goal nodes, sorted.
func (g *Graph) Goals() []string {
	goals := make([]string, 0, len(g.goals))
	for n := range g.goals {
		goals = append(goals, n)
	}
	sort.Strings(goals)
	return goals
}

// HeuristicOf returns the table entry for node and whether one exists.
func (g *Graph) HeuristicOf(node string) (float64, bool) {
	h, ok := g.heuristic[node]
	return h, ok
}

// Validate checks that at least one goal exists.
func (g *Graph) Validate() error {
	if len(g.goals) == 0 {
		return errors.New("graphs: no goal nodes")
	}
	return nil
}

// Actions returns the targets of every arc leaving state.
func (g *Graph) Actions(state string) []string {
	edges := g.out[state]
	actions := make([]string, len(edges))
	for i, e := range edges {
		actions[i] = e.To
	}
	return actions
}

// Result follows the arc from state to action.
func (g *Graph) Result(state, action string) (string, float64) {
	if e, ok := g.arc(state, action); ok {
		return e.To, e.Cost
	}
	panic(&search.ContractError{Op: "graphs.Result", Msg: fmt.Sprintf("no arc %s -> %s", state, action)})
}

// Heuristic looks state up in the table.
func (g *Graph) Heuristic(state string) float64 { return g.heuristic[state] }

// IsGoal reports whether state is a goal node.
func (g *Graph) IsGoal(state string) bool { return g.goals[state] }

// PathCost sums the arcs along path, a sequence of node names starting at
// the initial node. It returns an error if some step has no arc.
func (g *Graph) PathCost(path []string) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		e, ok := g.arc(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("graphs: no arc %s -> %s", path[i-1], path[i])
		}
		total += e.Cost
	}
	return total, nil
}

func (g *Graph) arc(from, to string) (Edge, bool) {
	for _, e := range g.out[from] {
		if e.To == to {
			return e, true
		}
	}
	return Edge{}, false
}
