package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

var (
	// ErrRestart is returned by a Player to abandon the game and
	// start over.
	ErrRestart = errors.New("restart")
	ErrQuit    = errors.New("quit")
)

type Player interface {
	GetMove(b ttt.Board, toMove ttt.Player) (int, error)
}

type Game struct {
	First   ttt.Player
	Moves   []int
	Board   ttt.Board
	Outcome ttt.Outcome
}

type CLI struct {
	First ttt.Player
	Out   io.Writer
	X     Player
	O     Player

	// Color forces colored output even when Out is not a terminal.
	Color bool

	b     ttt.Board
	moves []int
}

func (c *CLI) Play() (*Game, error) {
	r := NewRenderer(c.Out, c.Color)
	for {
		g, err := c.play(r)
		if errors.Is(err, ErrRestart) {
			fmt.Fprintln(c.Out, "Restarting.")
			continue
		}
		return g, err
	}
}

func (c *CLI) play(r *Renderer) (*Game, error) {
	c.b = ttt.New()
	c.moves = nil
	toMove := c.First
	for {
		r.Render(c.b, toMove)
		if over, outcome := c.b.IsTerminal(); over {
			if w, ok := outcome.Winner(); ok {
				fmt.Fprintf(c.Out, "%s wins!\n", w)
			} else {
				fmt.Fprintln(c.Out, "It's a draw!")
			}
			return &Game{
				First:   c.First,
				Moves:   c.moves,
				Board:   c.b,
				Outcome: outcome,
			}, nil
		}
		p := c.X
		if toMove == ttt.PlayerO {
			p = c.O
		}
		m, err := p.GetMove(c.b, toMove)
		if err != nil {
			return nil, err
		}
		next, err := c.b.Move(m, toMove)
		if err != nil {
			fmt.Fprintln(c.Out, "illegal move:", err)
			continue
		}
		fmt.Fprintf(c.Out, "%d. %s %s\n", len(c.moves)+1, toMove, notation.FormatCell(m))
		c.b = next
		c.moves = append(c.moves, m)
		toMove = toMove.Flip()
	}
}

func (c *CLI) Moves() []int {
	return c.moves
}

type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	var opts []termenv.OutputOption
	if color {
		opts = append(opts, termenv.WithProfile(termenv.TrueColor))
	}
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Render draws b with coordinates, marking the winning line if any.
func (r *Renderer) Render(b ttt.Board, toMove ttt.Player) {
	line, won := b.WinningLine()
	highlight := make(map[int]bool)
	if won {
		for _, i := range line {
			highlight[i] = true
		}
	}

	fmt.Fprintln(r.out)
	if over, _ := b.IsTerminal(); !over {
		fmt.Fprintf(r.out, "[%s to play]\n", toMove)
	}
	for row := 0; row < ttt.Size; row++ {
		fmt.Fprintf(r.out, "%d. ", ttt.Size-row)
		for col := 0; col < ttt.Size; col++ {
			i := row*ttt.Size + col
			if col > 0 {
				fmt.Fprint(r.out, "|")
			}
			fmt.Fprint(r.out, r.cell(b.At(i), highlight[i]))
		}
		fmt.Fprintln(r.out)
		if row < ttt.Size-1 {
			fmt.Fprintln(r.out, "   ---+---+---")
		}
	}
	fmt.Fprint(r.out, "   ")
	for col := 0; col < ttt.Size; col++ {
		fmt.Fprintf(r.out, " %c  ", 'a'+col)
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) cell(c ttt.Cell, highlight bool) string {
	text := fmt.Sprintf(" %s ", c)
	if c == ttt.Empty {
		text = "   "
	}
	if highlight && r.out.Profile == termenv.Ascii {
		return fmt.Sprintf("[%s]", c)
	}
	s := r.out.String(text)
	switch c {
	case ttt.X:
		s = s.Foreground(r.out.Color("#dc5050")).Bold()
	case ttt.O:
		s = s.Foreground(r.out.Color("#50a0dc")).Bold()
	}
	if highlight {
		s = s.Background(r.out.Color("#64ff64"))
	}
	return s.String()
}
