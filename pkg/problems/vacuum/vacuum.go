// Package vacuum implements the vacuum-cleaner world: an agent moves around
// a rectangular grid and sucks up dirt until every cell is clean.
package vacuum

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/matzehuels/wayfinder/pkg/search"
)

// MaxCells is the largest grid the bitmask state can represent.
const MaxCells = 64

// Action is one agent move.
type Action int

const (
	Suck Action = iota
	Left
	Right
	Up
	Down
)

var actionNames = [...]string{Suck: "Suck", Left: "Left", Right: "Right", Up: "Up", Down: "Down"}

func (a Action) String() string {
	if a >= Suck && a <= Down {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction resolves an action name, case-insensitively.
func ParseAction(s string) (Action, error) {
	for i, name := range actionNames {
		if strings.EqualFold(name, s) {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown vacuum action %q", s)
}

// Pos is a grid cell. X grows to the right, Y grows downwards.
type Pos struct {
	X, Y int
}

// State is the agent position plus one dirt bit per cell, row-major.
type State struct {
	Agent Pos
	Dirt  uint64
}

// Dirty reports whether the cell at p is dirty in a world of the given width.
func (s State) Dirty(width int, p Pos) bool {
	return s.Dirt&(1<<uint(p.Y*width+p.X)) != 0
}

func (s State) String() string {
	return fmt.Sprintf("{agent: (%d,%d), dirty: %d}", s.Agent.X, s.Agent.Y, bits.OnesCount64(s.Dirt))
}

// World is a vacuum grid. It implements search.Problem[State, Action, int].
type World struct {
	Width, Height int
}

var _ search.Problem[State, Action, int] = (*World)(nil)

// ErrTooLarge is returned for grids with more than MaxCells cells.
var ErrTooLarge = errors.New("vacuum: grid exceeds 64 cells")

// New returns a width×height world.
func New(width, height int) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("vacuum: invalid grid %dx%d", width, height)
	}
	if width*height > MaxCells {
		return nil, ErrTooLarge
	}
	return &World{Width: width, Height: height}, nil
}

// Classic returns the two-location world: cells (0,0) and (1,0).
func Classic() *World {
	return &World{Width: 2, Height: 1}
}

// Start builds a state with the agent at agent and dirt on every listed cell.
func (w *World) Start(agent Pos, dirty ...Pos) (State, error) {
	if !w.inside(agent) {
		return State{}, fmt.Errorf("vacuum: agent %v outside %dx%d grid", agent, w.Width, w.Height)
	}
	s := State{Agent: agent}
	for _, p := range dirty {
		if !w.inside(p) {
			return State{}, fmt.Errorf("vacuum: dirt %v outside %dx%d grid", p, w.Width, w.Height)
		}
		s.Dirt |= w.bit(p)
	}
	return s, nil
}

func (w *World) inside(p Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w.Width && p.Y < w.Height
}

func (w *World) bit(p Pos) uint64 { return 1 << uint(p.Y*w.Width+p.X) }

// Actions lists every move that stays inside the grid, then Suck when the
// agent's cell is dirty. Suck comes last so a LIFO frontier tries it first.
func (w *World) Actions(s State) []Action {
	actions := make([]Action, 0, 5)
	if s.Agent.X > 0 {
		actions = append(actions, Left)
	}
	if s.Agent.X < w.Width-1 {
		actions = append(actions, Right)
	}
	if s.Agent.Y > 0 {
		actions = append(actions, Up)
	}
	if s.Agent.Y < w.Height-1 {
		actions = append(actions, Down)
	}
	if s.Dirt&w.bit(s.Agent) != 0 {
		actions = append(actions, Suck)
	}
	return actions
}

// Result applies a. Every action costs 1.
func (w *World) Result(s State, a Action) (State, int) {
	switch a {
	case Suck:
		s.Dirt &^= w.bit(s.Agent)
	case Left:
		s.Agent.X--
	case Right:
		s.Agent.X++
	case Up:
		s.Agent.Y--
	case Down:
		s.Agent.Y++
	}
	return s, 1
}

// Heuristic counts the dirty cells plus the Manhattan distance to the
// nearest one. Each dirty cell needs its own Suck and the agent has to
// reach at least one of them, so the estimate never overshoots.
func (w *World) Heuristic(s State) int {
	if s.Dirt == 0 {
		return 0
	}
	nearest := w.Width + w.Height
	for d := s.Dirt; d != 0; d &= d - 1 {
		i := bits.TrailingZeros64(d)
		p := Pos{X: i % w.Width, Y: i / w.Width}
		nearest = min(nearest, abs(p.X-s.Agent.X)+abs(p.Y-s.Agent.Y))
	}
	return bits.OnesCount64(s.Dirt) + nearest
}

// IsGoal reports whether every cell is clean.
func (w *World) IsGoal(s State) bool { return s.Dirt == 0 }

// Render draws the grid: A for the agent, * for dirt, # for both.
func (w *World) Render(s State) string {
	var b strings.Builder
	for y := range w.Height {
		for x := range w.Width {
			p := Pos{X: x, Y: y}
			switch dirty := s.Dirty(w.Width, p); {
			case p == s.Agent && dirty:
				b.WriteByte('#')
			case p == s.Agent:
				b.WriteByte('A')
			case dirty:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
