// Package puzzle implements the n×n sliding-tile puzzle (8-puzzle for n = 3,
// 15-puzzle for n = 4).
//
// Tiles are numbered 1..n²-1 and 0 is the blank. The goal places the tiles
// in row-major order with the blank last.
package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/wayfinder/pkg/search"
)

// MaxSize is the largest supported side length.
const MaxSize = 4

// Move names the direction the blank slides in.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

var moveNames = [...]string{Up: "Up", Down: "Down", Left: "Left", Right: "Right"}

func (m Move) String() string {
	if m >= Up && m <= Right {
		return moveNames[m]
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Board is a tile layout. Only the first n² entries of Tiles are used.
type Board struct {
	Tiles [MaxSize * MaxSize]uint8
	n     uint8
	blank uint8
}

// Blank returns the row-major index of the blank.
func (b Board) Blank() int { return int(b.blank) }

// ErrUnsolvable is returned by Check for layouts of the wrong parity.
var ErrUnsolvable = errors.New("puzzle: layout is not solvable")

// Puzzle is an n×n instance. It implements search.Problem[Board, Move, int].
type Puzzle struct {
	n    int
	goal Board
}

var _ search.Problem[Board, Move, int] = (*Puzzle)(nil)

// New returns the n×n puzzle.
func New(n int) (*Puzzle, error) {
	if n < 2 || n > MaxSize {
		return nil, fmt.Errorf("puzzle: size %d out of range [2, %d]", n, MaxSize)
	}
	p := &Puzzle{n: n}
	cells := n * n
	for i := range cells - 1 {
		p.goal.Tiles[i] = uint8(i + 1)
	}
	p.goal.n = uint8(n)
	p.goal.blank = uint8(cells - 1)
	return p, nil
}

// Size returns n.
func (p *Puzzle) Size() int { return p.n }

// Goal returns the solved layout.
func (p *Puzzle) Goal() Board { return p.goal }

// Parse validates tiles, a row-major permutation of 0..n²-1, and builds a
// layout.
func (p *Puzzle) Parse(tiles []int) (Board, error) {
	cells := p.n * p.n
	if len(tiles) != cells {
		return Board{}, fmt.Errorf("puzzle: got %d tiles, want %d", len(tiles), cells)
	}
	b := Board{n: uint8(p.n)}
	seen := make([]bool, cells)
	for i, t := range tiles {
		if t < 0 || t >= cells || seen[t] {
			return Board{}, fmt.Errorf("puzzle: tiles must be a permutation of 0..%d", cells-1)
		}
		seen[t] = true
		b.Tiles[i] = uint8(t)
		if t == 0 {
			b.blank = uint8(i)
		}
	}
	return b, nil
}

// Solvable reports whether b can reach the goal layout.
//
// For odd n the inversion count must be even. For even n the inversion
// count plus the blank's row counted from the bottom (1-based) must be odd.
func (p *Puzzle) Solvable(b Board) bool {
	cells := p.n * p.n
	inversions := 0
	for i := range cells {
		if b.Tiles[i] == 0 {
			continue
		}
		for j := i + 1; j < cells; j++ {
			if b.Tiles[j] != 0 && b.Tiles[j] < b.Tiles[i] {
				inversions++
			}
		}
	}
	if p.n%2 == 1 {
		return inversions%2 == 0
	}
	rowFromBottom := p.n - int(b.blank)/p.n
	return (inversions+rowFromBottom)%2 == 1
}

// Check returns ErrUnsolvable if b cannot reach the goal.
func (p *Puzzle) Check(b Board) error {
	if !p.Solvable(b) {
		return ErrUnsolvable
	}
	return nil
}

// Actions lists the blank's legal slides in Up, Down, Left, Right order.
func (p *Puzzle) Actions(b Board) []Move {
	row, col := int(b.blank)/p.n, int(b.blank)%p.n
	moves := make([]Move, 0, 4)
	if row > 0 {
		moves = append(moves, Up)
	}
	if row < p.n-1 {
		moves = append(moves, Down)
	}
	if col > 0 {
		moves = append(moves, Left)
	}
	if col < p.n-1 {
		moves = append(moves, Right)
	}
	return moves
}

// Result slides the blank. Every move costs 1.
func (p *Puzzle) Result(b Board, m Move) (Board, int) {
	from := int(b.blank)
	to := from
	switch m {
	case Up:
		to -= p.n
	case Down:
		to += p.n
	case Left:
		to--
	case Right:
		to++
	}
	b.Tiles[from], b.Tiles[to] = b.Tiles[to], 0
	b.blank = uint8(to)
	return b, 1
}

// Heuristic sums the Manhattan distances of every tile to its goal cell.
func (p *Puzzle) Heuristic(b Board) int {
	h := 0
	for i := range p.n * p.n {
		t := int(b.Tiles[i])
		if t == 0 {
			continue
		}
		goal := t - 1
		h += abs(i/p.n-goal/p.n) + abs(i%p.n-goal%p.n)
	}
	return h
}

// IsGoal reports whether b is solved.
func (p *Puzzle) IsGoal(b Board) bool { return b == p.goal }

// Format renders b as rows of space-separated tiles with _ for the blank.
func (p *Puzzle) Format(b Board) string {
	var sb strings.Builder
	for r := range p.n {
		for c := range p.n {
			if c > 0 {
				sb.WriteByte(' ')
			}
			t := b.Tiles[r*p.n+c]
			if t == 0 {
				sb.WriteByte('_')
			} else {
				sb.WriteString(strconv.Itoa(int(t)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b Board) String() string {
	cells := int(b.n) * int(b.n)
	parts := make([]string, cells)
	for i := range cells {
		parts[i] = strconv.Itoa(int(b.Tiles[i]))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
