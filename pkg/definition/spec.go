package definition

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/wayfinder/pkg/problems/folding"
	"github.com/matzehuels/wayfinder/pkg/problems/graphs"
	"github.com/matzehuels/wayfinder/pkg/problems/puzzle"
	"github.com/matzehuels/wayfinder/pkg/problems/queens"
	"github.com/matzehuels/wayfinder/pkg/problems/vacuum"
)

// ErrUnknownKind is returned for a kind outside [Kinds].
var ErrUnknownKind = errors.New("unknown problem kind")

// Built-in graph names accepted by GraphSpec.Builtin.
const (
	BuiltinExercise    = "exercise"
	BuiltinExerciseTwo = "exercise-two"
)

// GraphSpec describes a weighted directed graph, either literally or by
// naming a built-in graph.
type GraphSpec struct {
	Builtin   string             `toml:"builtin" json:"builtin,omitempty"`
	Start     string             `toml:"start" json:"start"`
	Goals     []string           `toml:"goals" json:"goals,omitempty"`
	Edges     []EdgeSpec         `toml:"edges" json:"edges,omitempty"`
	Heuristic map[string]float64 `toml:"heuristic" json:"heuristic,omitempty"`
}

// EdgeSpec is one weighted arc.
type EdgeSpec struct {
	From string  `toml:"from" json:"from"`
	To   string  `toml:"to" json:"to"`
	Cost float64 `toml:"cost" json:"cost"`
}

// Build returns the graph and the start node. Built-in graphs start at S
// unless Start overrides it.
func (s *GraphSpec) Build() (*graphs.Graph, string, error) {
	start := s.Start
	if s.Builtin != "" {
		if len(s.Edges) > 0 || len(s.Goals) > 0 || len(s.Heuristic) > 0 {
			return nil, "", fmt.Errorf("builtin graph %q cannot be combined with edges, goals or heuristic", s.Builtin)
		}
		var g *graphs.Graph
		switch s.Builtin {
		case BuiltinExercise:
			g = graphs.Exercise()
		case BuiltinExerciseTwo:
			g = graphs.ExerciseTwo()
		default:
			return nil, "", fmt.Errorf("unknown builtin graph %q", s.Builtin)
		}
		if start == "" {
			start = "S"
		}
		if !g.Has(start) {
			return nil, "", fmt.Errorf("%w: start %q", graphs.ErrUnknownNode, start)
		}
		return g, start, nil
	}

	if start == "" {
		return nil, "", errors.New("graph start is required")
	}
	b := graphs.NewBuilder()
	for _, e := range s.Edges {
		if e.From == "" || e.To == "" {
			return nil, "", errors.New("edge endpoints cannot be empty")
		}
		b.Edge(e.From, e.To, e.Cost)
	}
	for _, node := range slices.Sorted(maps.Keys(s.Heuristic)) {
		b.H(node, s.Heuristic[node])
	}
	b.Goal(s.Goals...)
	g, err := b.Build()
	if err != nil {
		return nil, "", err
	}
	if !g.Has(start) {
		return nil, "", fmt.Errorf("%w: start %q", graphs.ErrUnknownNode, start)
	}
	return g, start, nil
}

// Point is a grid cell.
type Point struct {
	X int `toml:"x" json:"x"`
	Y int `toml:"y" json:"y"`
}

// VacuumSpec describes a rectangular vacuum world and its start state.
// Width and Height default to the classic 2x1 world.
type VacuumSpec struct {
	Width  int     `toml:"width" json:"width,omitempty"`
	Height int     `toml:"height" json:"height,omitempty"`
	Agent  Point   `toml:"agent" json:"agent"`
	Dirt   []Point `toml:"dirt" json:"dirt,omitempty"`
}

// Build returns the world and the start state.
func (s *VacuumSpec) Build() (*vacuum.World, vacuum.State, error) {
	w, h := s.Width, s.Height
	if w == 0 && h == 0 {
		w, h = 2, 1
	}
	world, err := vacuum.New(w, h)
	if err != nil {
		return nil, vacuum.State{}, err
	}
	dirt := make([]vacuum.Pos, len(s.Dirt))
	for i, p := range s.Dirt {
		dirt[i] = vacuum.Pos{X: p.X, Y: p.Y}
	}
	start, err := world.Start(vacuum.Pos{X: s.Agent.X, Y: s.Agent.Y}, dirt...)
	if err != nil {
		return nil, vacuum.State{}, err
	}
	return world, start, nil
}

// PuzzleSpec describes a sliding-tile puzzle. Tiles are row-major with 0
// for the blank; Size defaults to 3.
type PuzzleSpec struct {
	Size  int   `toml:"size" json:"size,omitempty"`
	Tiles []int `toml:"tiles" json:"tiles"`
}

// Build returns the puzzle and the start layout. Unsolvable layouts are
// rejected.
func (s *PuzzleSpec) Build() (*puzzle.Puzzle, puzzle.Board, error) {
	n := s.Size
	if n == 0 {
		n = 3
	}
	p, err := puzzle.New(n)
	if err != nil {
		return nil, puzzle.Board{}, err
	}
	b, err := p.Parse(s.Tiles)
	if err != nil {
		return nil, puzzle.Board{}, err
	}
	if err := p.Check(b); err != nil {
		return nil, puzzle.Board{}, err
	}
	return p, b, nil
}

// QueensSpec describes an N-queens instance.
type QueensSpec struct {
	N int `toml:"n" json:"n"`
}

// Build returns the board and the empty placement.
func (s *QueensSpec) Build() (queens.Board, queens.Placement, error) {
	b, err := queens.New(s.N)
	if err != nil {
		return queens.Board{}, queens.Placement{}, err
	}
	return b, queens.Placement{}, nil
}

// FoldingSpec describes an HP protein sequence.
type FoldingSpec struct {
	Sequence string `toml:"sequence" json:"sequence"`
}

// Build returns the protein and the fold holding only the first residue.
func (s *FoldingSpec) Build() (*folding.Protein, folding.Fold, error) {
	p, err := folding.Parse(s.Sequence)
	if err != nil {
		return nil, folding.Fold{}, err
	}
	return p, folding.Fold{}, nil
}
