package tttest

import (
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

func Board(s string) ttt.Board {
	b, _, e := notation.ParseBoard(s)
	if e != nil {
		panic(e)
	}
	return b
}

func Cells(s string) []int {
	cs, e := notation.ParseCells(s)
	if e != nil {
		panic(e)
	}
	return cs
}

// Position plays the given cells from the empty board, X first.
func Position(ms string) (ttt.Board, ttt.Player) {
	b, p, e := notation.Replay(ttt.New(), ttt.PlayerX, Cells(ms))
	if e != nil {
		panic(e)
	}
	return b, p
}

// Reachable calls fn on every position reachable from the empty board
// by alternating play with X first, terminal positions included.
func Reachable(fn func(b ttt.Board, toMove ttt.Player)) {
	seen := make(map[ttt.Board]struct{})
	var walk func(b ttt.Board, p ttt.Player)
	walk = func(b ttt.Board, p ttt.Player) {
		if _, ok := seen[b]; ok {
			return
		}
		seen[b] = struct{}{}
		fn(b, p)
		if over, _ := b.IsTerminal(); over {
			return
		}
		for _, i := range b.EmptyCells() {
			walk(b.Place(i, p), p.Flip())
		}
	}
	walk(ttt.New(), ttt.PlayerX)
}
