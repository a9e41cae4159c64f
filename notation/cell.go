package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tictactician/tictactician/ttt"
)

var ErrBadCell = errors.New("bad cell")

// ParseCell accepts a coordinate ("a1" is the bottom-left corner, "c3"
// the top-right) or a bare row-major index "0".."8".
func ParseCell(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch len(s) {
	case 1:
		if s[0] < '0' || s[0] > '8' {
			return 0, fmt.Errorf("%w: %q", ErrBadCell, s)
		}
		return int(s[0] - '0'), nil
	case 2:
		col := int(s[0]) - 'a'
		row := int(s[1]) - '1'
		if col < 0 || col >= ttt.Size || row < 0 || row >= ttt.Size {
			return 0, fmt.Errorf("%w: %q", ErrBadCell, s)
		}
		return (ttt.Size-1-row)*ttt.Size + col, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
}

func FormatCell(i int) string {
	if i < 0 || i >= ttt.Size*ttt.Size {
		panic(fmt.Sprintf("FormatCell: bad index %d", i))
	}
	col := i % ttt.Size
	row := ttt.Size - 1 - i/ttt.Size
	return fmt.Sprintf("%c%c", 'a'+col, '1'+row)
}

func ParseCells(s string) ([]int, error) {
	var out []int
	for _, w := range strings.Fields(s) {
		i, err := ParseCell(w)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

func FormatCells(cs []int) string {
	bits := make([]string, len(cs))
	for i, c := range cs {
		bits[i] = FormatCell(c)
	}
	return strings.Join(bits, " ")
}

// Replay plays the cells in order from b, alternating sides starting
// with toMove, and returns the resulting board and side to move.
func Replay(b ttt.Board, toMove ttt.Player, cells []int) (ttt.Board, ttt.Player, error) {
	for _, c := range cells {
		var err error
		b, err = b.Move(c, toMove)
		if err != nil {
			return b, toMove, fmt.Errorf("%s: %w", FormatCell(c), err)
		}
		toMove = toMove.Flip()
	}
	return b, toMove, nil
}
