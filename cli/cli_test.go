package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/ttt"
	"github.com/tictactician/tictactician/tttest"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)
	r.Render(tttest.Board("XX.OO...."), ttt.PlayerX)
	want := strings.Join([]string{
		"",
		"[X to play]",
		"3.  X | X |   ",
		"   ---+---+---",
		"2.  O | O |   ",
		"   ---+---+---",
		"1.    |   |   ",
		"    a   b   c  ",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRenderWin(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)
	r.Render(tttest.Board("XXXOO...."), ttt.PlayerO)
	assert.NotContains(t, buf.String(), "to play")
	assert.Contains(t, buf.String(), "3. [X]|[X]|[X]\n")

	buf.Reset()
	r = NewRenderer(&buf, true)
	r.Render(tttest.Board("XXXOO...."), ttt.PlayerO)
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestCLIPlayer(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("\nzz\nb2\nrestart\nq\n"))
	p := NewCLIPlayer(&out, in)

	m, err := p.GetMove(ttt.New(), ttt.PlayerX)
	require.NoError(t, err)
	assert.Equal(t, 4, m)
	assert.Contains(t, out.String(), "parse error")

	_, err = p.GetMove(ttt.New(), ttt.PlayerX)
	assert.Equal(t, ErrRestart, err)
	_, err = p.GetMove(ttt.New(), ttt.PlayerX)
	assert.Equal(t, ErrQuit, err)
	_, err = p.GetMove(ttt.New(), ttt.PlayerX)
	assert.Equal(t, ErrQuit, err)
}

type scripted []int

func (s *scripted) GetMove(b ttt.Board, toMove ttt.Player) (int, error) {
	if len(*s) == 0 {
		return 0, ErrQuit
	}
	m := (*s)[0]
	*s = (*s)[1:]
	return m, nil
}

func TestPlayAgainstEngine(t *testing.T) {
	var out bytes.Buffer
	// The human blunders into an occupied cell once, then plays the
	// corners; the engine wins.
	human := scripted{4, 0, 8, 2, 6}
	c := &CLI{
		First: ttt.PlayerX,
		Out:   &out,
		X:     &AIPlayer{P: ai.NewMinimax(ai.MinimaxConfig{})},
		O:     &human,
	}
	g, err := c.Play()
	require.NoError(t, err)
	assert.Equal(t, ttt.XWins, g.Outcome)
	assert.Contains(t, out.String(), "illegal move")
	assert.Contains(t, out.String(), "X wins!")
	assert.Equal(t, 4, g.Moves[0])
}

func TestPlaySelf(t *testing.T) {
	for _, first := range []ttt.Player{ttt.PlayerX, ttt.PlayerO} {
		var out bytes.Buffer
		mm := ai.NewMinimax(ai.MinimaxConfig{})
		c := &CLI{
			First: first,
			Out:   &out,
			X:     &AIPlayer{P: mm},
			O:     &AIPlayer{P: mm},
		}
		g, err := c.Play()
		require.NoError(t, err)
		assert.Equal(t, ttt.Draw, g.Outcome)
		assert.Len(t, g.Moves, 9)
		assert.Contains(t, out.String(), "It's a draw!")
		assert.Equal(t, g.Moves, c.Moves())
	}
}

func TestRestart(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("a1\nr\nq\n"))
	c := &CLI{
		First: ttt.PlayerO,
		Out:   &out,
		X:     &AIPlayer{P: ai.NewMinimax(ai.MinimaxConfig{})},
		O:     NewCLIPlayer(&out, in),
	}
	_, err := c.Play()
	assert.Equal(t, ErrQuit, err)
	assert.Contains(t, out.String(), "Restarting.")
	assert.Equal(t, 1, strings.Count(out.String(), "1. O a1"))
}
