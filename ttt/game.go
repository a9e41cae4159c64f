package ttt

import (
	"errors"
	"fmt"
	"strings"
)

const Size = 3

// Board is a 3x3 position in row-major order: index = 3*row + column,
// row 0 at the top. Boards are values; every move returns a copy.
type Board [Size * Size]Cell

// WinLine is a triple of cell indices.
type WinLine [3]int

// WinLines lists the rows, then the columns, then the two diagonals.
var WinLines = [8]WinLine{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

var (
	ErrOutOfRange = errors.New("cell out of range")
	ErrOccupied   = errors.New("cell occupied")
	ErrGameOver   = errors.New("game is over")
)

func New() Board {
	return Board{}
}

// FromCells builds a board from a row-major slice of exactly nine cells.
func FromCells(cells []Cell) (Board, error) {
	var b Board
	if len(cells) != len(b) {
		return b, fmt.Errorf("need %d cells, got %d", len(b), len(cells))
	}
	copy(b[:], cells)
	return b, nil
}

func (b Board) At(i int) Cell {
	return b[i]
}

// Place returns a copy of b with cell i marked for p. Placing on an
// occupied or out-of-range cell is a caller bug and panics.
func (b Board) Place(i int, p Player) Board {
	if i < 0 || i >= len(b) {
		panic(fmt.Sprintf("Place: index %d out of range", i))
	}
	if b[i] != Empty {
		panic(fmt.Sprintf("Place: cell %d occupied by %s", i, b[i]))
	}
	b[i] = p.Cell()
	return b
}

// Move is the checked form of Place, for moves from untrusted input.
func (b Board) Move(i int, p Player) (Board, error) {
	if i < 0 || i >= len(b) {
		return b, fmt.Errorf("move %d: %w", i, ErrOutOfRange)
	}
	if over, _ := b.IsTerminal(); over {
		return b, fmt.Errorf("move %d: %w", i, ErrGameOver)
	}
	if b[i] != Empty {
		return b, fmt.Errorf("move %d: %w", i, ErrOccupied)
	}
	return b.Place(i, p), nil
}

// IsTerminal reports whether the game has ended and how. If several
// lines are complete the first one in WinLines decides the outcome.
func (b Board) IsTerminal() (bool, Outcome) {
	if l, ok := b.WinningLine(); ok {
		return true, outcomeOf(b[l[0]])
	}
	if b.Full() {
		return true, Draw
	}
	return false, None
}

// WinningLine returns the first complete line, for highlighting.
func (b Board) WinningLine() (WinLine, bool) {
	for _, l := range WinLines {
		c := b[l[0]]
		if c != Empty && b[l[1]] == c && b[l[2]] == c {
			return l, true
		}
	}
	return WinLine{}, false
}

func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

func (b Board) EmptyCells() []int {
	out := make([]int, 0, len(b))
	for i, c := range b {
		if c == Empty {
			out = append(out, i)
		}
	}
	return out
}

func (b Board) Count(c Cell) int {
	n := 0
	for _, v := range b {
		if v == c {
			n++
		}
	}
	return n
}

// ToMove infers the side to move assuming alternating play from an
// empty board on which first moved first.
func (b Board) ToMove(first Player) Player {
	if b.Count(first.Cell()) > b.Count(first.Flip().Cell()) {
		return first.Flip()
	}
	return first
}

// Less orders boards lexicographically, cell by cell.
func (b Board) Less(o Board) bool {
	for i := range b {
		if b[i] != o[i] {
			return b[i] < o[i]
		}
	}
	return false
}

func (b Board) String() string {
	var out strings.Builder
	for _, c := range b {
		out.WriteString(c.String())
	}
	return out.String()
}
