package ttt

import "fmt"

// Cell is the content of one square. The declaration order is the
// total order used when comparing boards.
type Cell byte

const (
	Empty Cell = iota
	O
	X
)

// Player is the side to move. X maximizes, O minimizes.
type Player byte

const (
	PlayerX Player = Player(X)
	PlayerO Player = Player(O)
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case X:
		return "X"
	case O:
		return "O"
	default:
		panic(fmt.Sprintf("bad cell: %x", byte(c)))
	}
}

func (p Player) Cell() Cell {
	switch p {
	case PlayerX:
		return X
	case PlayerO:
		return O
	default:
		panic(fmt.Sprintf("bad player: %x", byte(p)))
	}
}

func (p Player) Flip() Player {
	switch p {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		panic(fmt.Sprintf("bad player: %x", byte(p)))
	}
}

func (p Player) String() string {
	return p.Cell().String()
}

// Outcome is the result of a finished game.
type Outcome byte

const (
	None Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case XWins:
		return "X"
	case OWins:
		return "O"
	case Draw:
		return "draw"
	default:
		panic(fmt.Sprintf("bad outcome: %x", byte(o)))
	}
}

// Score is the minimax value of a terminal outcome.
func (o Outcome) Score() int {
	switch o {
	case XWins:
		return 1
	case OWins:
		return -1
	default:
		return 0
	}
}

func (o Outcome) Winner() (Player, bool) {
	switch o {
	case XWins:
		return PlayerX, true
	case OWins:
		return PlayerO, true
	default:
		return PlayerX, false
	}
}

func outcomeOf(c Cell) Outcome {
	if c == X {
		return XWins
	}
	return OWins
}
