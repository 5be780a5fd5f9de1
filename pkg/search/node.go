package search

import (
	"fmt"
	"slices"
)

// Node is one step on a search path: a state, the action that produced it,
// a link to the parent node, and the cached costs of the path so far.
//
// Nodes are immutable after construction except for the tombstone flag,
// which the [Frontier] sets when a cheaper path to the same state replaces
// this one.
type Node[S comparable, A any, C Cost] struct {
	state     S
	parent    *Node[S, A, C]
	action    A
	hasAction bool
	g         C
	h         C
	depth     int
	dead      bool
}

// NewNode builds a node for state.
//
// A root node has a nil parent and a nil action; every other node has both.
// cost is the incremental cost of reaching state: a child's g is
// parent.G() + cost and a root's g is cost itself (the explorer passes
// zero). The heuristic is evaluated once here and cached.
//
// NewNode panics with a [*ContractError] if exactly one of parent and
// action is nil.
func NewNode[S comparable, A any, C Cost](parent *Node[S, A, C], problem Problem[S, A, C], state S, action *A, cost C) *Node[S, A, C] {
	n := new(Node[S, A, C])
	n.init(parent, problem, state, action, cost)
	return n
}

func (n *Node[S, A, C]) init(parent *Node[S, A, C], problem Problem[S, A, C], state S, action *A, cost C) {
	if (parent == nil) != (action == nil) {
		violate("NewNode", "parent and action must be both present or both absent (parent=%t, action=%t)",
			parent != nil, action != nil)
	}
	*n = Node[S, A, C]{state: state, parent: parent, g: cost}
	if parent != nil {
		n.action = *action
		n.hasAction = true
		n.g = parent.g + cost
		n.depth = parent.depth + 1
	}
	n.h = problem.Heuristic(state)
}

// State returns the node's state.
func (n *Node[S, A, C]) State() S { return n.state }

// Parent returns the parent node, or nil for a root.
func (n *Node[S, A, C]) Parent() *Node[S, A, C] { return n.parent }

// Action returns the action that produced the node. The boolean is false
// for a root.
func (n *Node[S, A, C]) Action() (A, bool) { return n.action, n.hasAction }

// G returns the accumulated path cost from the root.
func (n *Node[S, A, C]) G() C { return n.g }

// H returns the cached heuristic estimate.
func (n *Node[S, A, C]) H() C { return n.h }

// F returns G() + H().
func (n *Node[S, A, C]) F() C { return n.g + n.h }

// Depth returns the number of actions from the root.
func (n *Node[S, A, C]) Depth() int { return n.depth }

// IsRoot reports whether the node has no parent.
func (n *Node[S, A, C]) IsRoot() bool { return n.parent == nil }

// IsDead reports whether the node has been tombstoned.
func (n *Node[S, A, C]) IsDead() bool { return n.dead }

// MarkDead tombstones the node. It is idempotent.
func (n *Node[S, A, C]) MarkDead() { n.dead = true }

// Plan returns the actions from the root to this node, in execution order.
// A root yields an empty, non-nil plan.
//
// Plan panics with a [*ContractError] if the node is tombstoned.
func (n *Node[S, A, C]) Plan() []A {
	if n.dead {
		violate("Plan", "plan requested from tombstoned node %v", n)
	}
	plan := make([]A, 0, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		plan = append(plan, cur.action)
	}
	slices.Reverse(plan)
	return plan
}

// Path returns the states from the root to this node, inclusive.
func (n *Node[S, A, C]) Path() []S {
	path := make([]S, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.state)
	}
	slices.Reverse(path)
	return path
}

func (n *Node[S, A, C]) String() string {
	return fmt.Sprintf("{s: %v, g: %v, h: %v, f: %v}", n.state, n.g, n.h, n.F())
}
