package search

import (
	"fmt"
	"strings"
)

// Strategy selects how the open set is ordered.
type Strategy int

const (
	BreadthFirst Strategy = iota // FIFO
	DepthFirst                   // LIFO
	UniformCost                  // lowest g first
	Greedy                       // lowest h first
	AStar                        // lowest g + h first
)

var strategyNames = [...]string{
	BreadthFirst: "bfs",
	DepthFirst:   "dfs",
	UniformCost:  "ucs",
	Greedy:       "greedy",
	AStar:        "astar",
}

var strategyAliases = map[string]Strategy{
	"bfs":           BreadthFirst,
	"breadth-first": BreadthFirst,
	"dfs":           DepthFirst,
	"depth-first":   DepthFirst,
	"ucs":           UniformCost,
	"uniform-cost":  UniformCost,
	"dijkstra":      UniformCost,
	"greedy":        Greedy,
	"best-first":    Greedy,
	"astar":         AStar,
	"a*":            AStar,
	"a-star":        AStar,
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{BreadthFirst, DepthFirst, UniformCost, Greedy, AStar}
}

// ParseStrategy resolves a strategy name or alias, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	if s, ok := strategyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(strategyNames[:], ", "))
}

func (s Strategy) String() string {
	if s.Valid() {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Valid reports whether s is a declared strategy.
func (s Strategy) Valid() bool { return s >= BreadthFirst && s <= AStar }

// Informed reports whether the strategy consults the heuristic.
func (s Strategy) Informed() bool { return s == Greedy || s == AStar }

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid strategy %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// NewBackend returns the backend the strategy orders its open set with.
// It panics with a [*ContractError] for an undeclared strategy.
func NewBackend[S comparable, A any, C Cost](s Strategy) Backend[S, A, C] {
	switch s {
	case BreadthFirst:
		return NewQueue[S, A, C]()
	case DepthFirst:
		return NewStack[S, A, C]()
	case UniformCost:
		return NewPriority(ByG[S, A, C])
	case Greedy:
		return NewPriority(ByH[S, A, C])
	case AStar:
		return NewPriority(ByF[S, A, C])
	}
	violate("NewBackend", "undeclared strategy %d", int(s))
	return nil
}

// Mode selects between graph search and tree search.
type Mode int

const (
	// GraphSearch keeps an explored set and deduplicates the frontier.
	GraphSearch Mode = iota
	// TreeSearch pushes every successor without duplicate detection.
	TreeSearch
)

func (m Mode) String() string {
	switch m {
	case GraphSearch:
		return "graph"
	case TreeSearch:
		return "tree"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves "graph" or "tree".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "graph", "":
		return GraphSearch, nil
	case "tree":
		return TreeSearch, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want graph or tree)", name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
