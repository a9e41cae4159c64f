package ai

import (
	"github.com/tictactician/tictactician/ttt"
	"golang.org/x/net/context"
)

// Player chooses a move for toMove. ok is false when the board has no
// empty cell.
type Player interface {
	GetMove(ctx context.Context, b ttt.Board, toMove ttt.Player) (cell int, ok bool)
}
