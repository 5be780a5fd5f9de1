// Package queens implements incremental N-queens: queens are placed one row
// at a time in a column no earlier queen attacks. Every state is reached by
// exactly one placement sequence, which makes it a natural tree search.
package queens

import (
	"fmt"
	"strings"

	"github.com/matzehuels/wayfinder/pkg/search"
)

// MaxN is the largest supported board.
const MaxN = 16

// Placement records the column of the queen in each filled row.
type Placement struct {
	Cols  [MaxN]int8
	Count int8
}

// Rows returns the filled columns, one per row.
func (p Placement) Rows() []int {
	rows := make([]int, p.Count)
	for i := range rows {
		rows[i] = int(p.Cols[i])
	}
	return rows
}

func (p Placement) String() string { return fmt.Sprint(p.Rows()) }

// Board is an N×N instance. It implements search.Problem[Placement, int, int]
// where an action is the column for the next row.
type Board struct {
	N int
}

var _ search.Problem[Placement, int, int] = Board{}

// New returns the n-queens problem.
func New(n int) (Board, error) {
	if n < 1 || n > MaxN {
		return Board{}, fmt.Errorf("queens: n = %d out of range [1, %d]", n, MaxN)
	}
	return Board{N: n}, nil
}

// Safe reports whether a queen at row len(p), column col is unattacked.
func (b Board) Safe(p Placement, col int) bool {
	row := int(p.Count)
	for r := range row {
		c := int(p.Cols[r])
		if c == col || row-r == abs(col-c) {
			return false
		}
	}
	return true
}

// Actions lists the safe columns for the next row in ascending order.
func (b Board) Actions(p Placement) []int {
	if int(p.Count) >= b.N {
		return nil
	}
	cols := make([]int, 0, b.N)
	for c := range b.N {
		if b.Safe(p, c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Result places a queen. Every placement costs 1.
func (b Board) Result(p Placement, col int) (Placement, int) {
	p.Cols[p.Count] = int8(col)
	p.Count++
	return p, 1
}

// Heuristic counts the queens still to place.
func (b Board) Heuristic(p Placement) int { return b.N - int(p.Count) }

// IsGoal reports whether every row holds a queen.
func (b Board) IsGoal(p Placement) bool { return int(p.Count) == b.N }

// Format draws the board with Q for queens.
func (b Board) Format(p Placement) string {
	var sb strings.Builder
	for r := range b.N {
		for c := range b.N {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if r < int(p.Count) && int(p.Cols[r]) == c {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
