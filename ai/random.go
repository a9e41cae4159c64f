package ai

import (
	"math/rand"

	"github.com/tictactician/tictactician/ttt"
	"golang.org/x/net/context"
)

type RandomAI struct {
	r *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, b ttt.Board, toMove ttt.Player) (int, bool) {
	moves := b.EmptyCells()
	if len(moves) == 0 {
		return 0, false
	}
	return moves[r.r.Intn(len(moves))], true
}

func NewRandom(seed int64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
