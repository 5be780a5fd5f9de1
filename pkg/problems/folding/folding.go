// Package folding implements HP protein folding on the 2D square lattice.
//
// A sequence of hydrophobic (H) and polar (P) residues is laid out one
// residue at a time as a self-avoiding walk. Every H-H pair that ends up on
// adjacent lattice cells without being consecutive in the chain is a
// contact; the best fold maximizes contacts.
//
// The search cost of placing an H residue is the number of lattice
// neighbours it leaves without an H contact, so a minimum-cost fold is a
// maximum-contact fold. Placing a P residue is free.
package folding

import (
	"fmt"
	"strings"

	"github.com/matzehuels/wayfinder/pkg/search"
)

// maxContacts is the number of free neighbours a newly placed residue has on
// the square lattice: four minus the one taken by its predecessor.
const maxContacts = 3

// Dir is a lattice step.
type Dir byte

const (
	Up    Dir = 'U'
	Down  Dir = 'D'
	Left  Dir = 'L'
	Right Dir = 'R'
)

func (d Dir) String() string { return string(rune(d)) }

type cell struct{ x, y int }

func (c cell) step(d Dir) cell {
	switch d {
	case Up:
		c.y--
	case Down:
		c.y++
	case Left:
		c.x--
	case Right:
		c.x++
	}
	return c
}

// Fold is a partial conformation: the steps taken from residue 0, which
// sits at the origin.
type Fold struct {
	Steps string
}

// Len returns the number of residues placed.
func (f Fold) Len() int { return len(f.Steps) + 1 }

func (f Fold) String() string {
	if f.Steps == "" {
		return "-"
	}
	return f.Steps
}

func (f Fold) cells() []cell {
	cells := make([]cell, 1, len(f.Steps)+1)
	cur := cell{}
	for i := range len(f.Steps) {
		cur = cur.step(Dir(f.Steps[i]))
		cells = append(cells, cur)
	}
	return cells
}

// Protein is an HP sequence. It implements search.Problem[Fold, Dir, int].
type Protein struct {
	seq []bool // true for H
}

var _ search.Problem[Fold, Dir, int] = (*Protein)(nil)

// Parse reads a sequence of H and P letters, case-insensitively.
func Parse(sequence string) (*Protein, error) {
	sequence = strings.ToUpper(strings.TrimSpace(sequence))
	if len(sequence) < 2 {
		return nil, fmt.Errorf("folding: sequence %q needs at least two residues", sequence)
	}
	p := &Protein{seq: make([]bool, len(sequence))}
	for i, r := range sequence {
		switch r {
		case 'H':
			p.seq[i] = true
		case 'P':
		default:
			return nil, fmt.Errorf("folding: residue %q at %d is neither H nor P", r, i)
		}
	}
	return p, nil
}

// Len returns the number of residues.
func (p *Protein) Len() int { return len(p.seq) }

func (p *Protein) String() string {
	var b strings.Builder
	for _, h := range p.seq {
		if h {
			b.WriteByte('H')
		} else {
			b.WriteByte('P')
		}
	}
	return b.String()
}

// Actions lists the free neighbouring cells for the next residue. Rotations
// and reflections are pruned: the second residue always goes Right, and Down
// is not offered until the chain has turned once.
func (p *Protein) Actions(f Fold) []Dir {
	if f.Len() >= len(p.seq) {
		return nil
	}
	if f.Steps == "" {
		return []Dir{Right}
	}
	turned := strings.Trim(f.Steps, string(Right)) != ""
	cells := f.cells()
	occupied := make(map[cell]bool, len(cells))
	for _, c := range cells {
		occupied[c] = true
	}
	head := cells[len(cells)-1]
	dirs := make([]Dir, 0, 3)
	for _, d := range []Dir{Up, Right, Down, Left} {
		if d == Down && !turned {
			continue
		}
		if !occupied[head.step(d)] {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Result places the next residue one step from the head.
func (p *Protein) Result(f Fold, d Dir) (Fold, int) {
	next := Fold{Steps: f.Steps + string(d)}
	i := f.Len()
	if !p.seq[i] {
		return next, 0
	}
	cells := next.cells()
	return next, maxContacts - p.contactsAt(cells, i)
}

// contactsAt counts H residues j < i-1 adjacent to residue i.
func (p *Protein) contactsAt(cells []cell, i int) int {
	n := 0
	c := cells[i]
	for j := 0; j < i-1; j++ {
		if !p.seq[j] {
			continue
		}
		dx, dy := cells[j].x-c.x, cells[j].y-c.y
		if dx*dx+dy*dy == 1 {
			n++
		}
	}
	return n
}

// Contacts counts the H-H contacts in f.
func (p *Protein) Contacts(f Fold) int {
	cells := f.cells()
	total := 0
	for i := 1; i < len(cells); i++ {
		if p.seq[i] {
			total += p.contactsAt(cells, i)
		}
	}
	return total
}

// Heuristic is zero: every unplaced H may still find all its contacts.
func (p *Protein) Heuristic(Fold) int { return 0 }

// IsGoal reports whether every residue is placed.
func (p *Protein) IsGoal(f Fold) bool { return f.Len() == len(p.seq) }

// Format draws the fold on its bounding box, with . for empty cells.
func (p *Protein) Format(f Fold) string {
	cells := f.cells()
	minX, minY, maxX, maxY := 0, 0, 0, 0
	for _, c := range cells {
		minX, maxX = min(minX, c.x), max(maxX, c.x)
		minY, maxY = min(minY, c.y), max(maxY, c.y)
	}
	grid := make(map[cell]byte, len(cells))
	for i, c := range cells {
		if p.seq[i] {
			grid[c] = 'H'
		} else {
			grid[c] = 'P'
		}
	}
	var b strings.Builder
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if r, ok := grid[cell{x, y}]; ok {
				b.WriteByte(r)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
