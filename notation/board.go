package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tictactician/tictactician/ttt"
)

var ErrBadBoard = errors.New("bad board")

// ParseBoard reads a board either as three rows separated by slashes,
// top row first ("x.o/.x./..o"), or as nine cells ("X.O.X...O").
// An optional trailing word names the side to move; without it, the
// side to move is inferred assuming X moved first.
func ParseBoard(s string) (ttt.Board, ttt.Player, error) {
	var b ttt.Board
	words := strings.Fields(s)
	if len(words) == 0 || len(words) > 2 {
		return b, ttt.PlayerX, fmt.Errorf("%w: wrong number of words: %q", ErrBadBoard, s)
	}
	cells := words[0]
	if strings.Contains(cells, "/") {
		rows := strings.Split(cells, "/")
		if len(rows) != ttt.Size {
			return b, ttt.PlayerX, fmt.Errorf("%w: need %d rows, got %d", ErrBadBoard, ttt.Size, len(rows))
		}
		for i, r := range rows {
			if len(r) != ttt.Size {
				return b, ttt.PlayerX, fmt.Errorf("%w: row %d bad length: %d", ErrBadBoard, i+1, len(r))
			}
		}
		cells = strings.Join(rows, "")
	}
	if len(cells) != len(b) {
		return b, ttt.PlayerX, fmt.Errorf("%w: need %d cells, got %d", ErrBadBoard, len(b), len(cells))
	}
	for i, r := range cells {
		c, err := parseCellContent(r)
		if err != nil {
			return b, ttt.PlayerX, err
		}
		b[i] = c
	}

	if len(words) == 1 {
		return b, b.ToMove(ttt.PlayerX), nil
	}
	p, err := ParsePlayer(words[1])
	if err != nil {
		return b, ttt.PlayerX, fmt.Errorf("%w: %v", ErrBadBoard, err)
	}
	return b, p, nil
}

func parseCellContent(r rune) (ttt.Cell, error) {
	switch r {
	case 'x', 'X':
		return ttt.X, nil
	case 'o', 'O':
		return ttt.O, nil
	case '.', '-', '_':
		return ttt.Empty, nil
	default:
		return ttt.Empty, fmt.Errorf("%w: bad cell %q", ErrBadBoard, r)
	}
}

func ParsePlayer(s string) (ttt.Player, error) {
	switch s {
	case "x", "X":
		return ttt.PlayerX, nil
	case "o", "O":
		return ttt.PlayerO, nil
	default:
		return ttt.PlayerX, fmt.Errorf("bad player: %q", s)
	}
}

// FormatBoard renders b in slash form followed by the side to move.
func FormatBoard(b ttt.Board, toMove ttt.Player) string {
	var rows []string
	for r := 0; r < ttt.Size; r++ {
		var row strings.Builder
		for c := 0; c < ttt.Size; c++ {
			row.WriteString(strings.ToLower(b.At(r*ttt.Size + c).String()))
		}
		rows = append(rows, row.String())
	}
	return fmt.Sprintf("%s %s", strings.Join(rows, "/"), strings.ToLower(toMove.String()))
}
