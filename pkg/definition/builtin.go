package definition

import (
	"slices"
	"sort"
)

// builtins are ready-made definitions, one or more per kind.
var builtins = map[string]Definition{
	"exercise": {
		Name:        "exercise",
		Kind:        KindGraph,
		Description: "Route finding from S to G1 or G2; optimal cost 14",
		Graph:       &GraphSpec{Builtin: BuiltinExercise},
	},
	"exercise-two": {
		Name:        "exercise-two",
		Kind:        KindGraph,
		Description: "Route finding with an inadmissible heuristic; optimal cost 19",
		Graph:       &GraphSpec{Builtin: BuiltinExerciseTwo},
	},
	"vacuum": {
		Name:        "vacuum",
		Kind:        KindVacuum,
		Description: "Two-cell vacuum world, both cells dirty",
		Vacuum:      &VacuumSpec{Agent: Point{0, 0}, Dirt: []Point{{0, 0}, {1, 0}}},
	},
	"vacuum-grid": {
		Name:        "vacuum-grid",
		Kind:        KindVacuum,
		Description: "3x3 vacuum world with three dirty cells",
		Vacuum: &VacuumSpec{
			Width: 3, Height: 3,
			Agent: Point{1, 1},
			Dirt:  []Point{{0, 0}, {2, 2}, {2, 0}},
		},
	},
	"8-puzzle": {
		Name:        "8-puzzle",
		Kind:        KindPuzzle,
		Description: "3x3 sliding-tile puzzle",
		Puzzle:      &PuzzleSpec{Size: 3, Tiles: []int{7, 2, 4, 5, 0, 6, 8, 3, 1}},
	},
	"8-queens": {
		Name:        "8-queens",
		Kind:        KindQueens,
		Description: "Place eight non-attacking queens",
		Queens:      &QueensSpec{N: 8},
	},
	"hp-fold": {
		Name:        "hp-fold",
		Kind:        KindFolding,
		Description: "HP lattice folding of a short sequence",
		Folding:     &FoldingSpec{Sequence: "HPPHPPHH"},
	},
}

// Builtin returns a copy of the named built-in definition.
func Builtin(name string) (*Definition, bool) {
	def, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return def.clone(), true
}

// Builtins returns the built-in definition names in sorted order.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d Definition) clone() *Definition {
	if d.Graph != nil {
		g := *d.Graph
		g.Goals = slices.Clone(g.Goals)
		g.Edges = slices.Clone(g.Edges)
		d.Graph = &g
	}
	if d.Vacuum != nil {
		v := *d.Vacuum
		v.Dirt = slices.Clone(v.Dirt)
		d.Vacuum = &v
	}
	if d.Puzzle != nil {
		p := *d.Puzzle
		p.Tiles = slices.Clone(p.Tiles)
		d.Puzzle = &p
	}
	if d.Queens != nil {
		q := *d.Queens
		d.Queens = &q
	}
	if d.Folding != nil {
		f := *d.Folding
		d.Folding = &f
	}
	return &d
}
